package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ApplyAvatarUpload .
func ApplyAvatarUpload(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.ApplyAvatarUploadReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.StsService.ApplyAvatarUpload(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteAsset .
func DeleteAsset(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.DeleteAssetReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.StsService.DeleteAsset(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
