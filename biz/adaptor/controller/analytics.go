package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetDashboardStats .
func GetDashboardStats(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetDashboardStatsReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.AnalyticsService.GetDashboardStats(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAnalytics .
func GetAnalytics(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetAnalyticsReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.AnalyticsService.GetAnalytics(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
