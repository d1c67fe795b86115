package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetSchedule .
func GetSchedule(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetScheduleReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.GetSchedule(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
