package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateClass .
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.CreateClassReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClass .
func UpdateClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.UpdateClassReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClass .
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.DeleteClassReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClass .
func GetClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetClassReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClasses .
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.ListClassesReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Enroll .
func Enroll(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.EnrollReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.Enroll(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Unenroll .
func Unenroll(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.UnenrollReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.Unenroll(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
