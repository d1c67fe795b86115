package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// SignIn .
func SignIn(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.SignInReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetUserInfo .
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetUserInfoReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.GetUserInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateUserInfo .
func UpdateUserInfo(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.UpdateUserInfoReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.UpdateUserInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListUsers .
func ListUsers(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.ListUsersReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateAvatar .
func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.UpdateAvatarReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.UpdateAvatar(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
