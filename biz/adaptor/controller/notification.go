package controller

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListNotifications .
func ListNotifications(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.ListNotificationsReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.NotificationService.ListNotifications(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkNotificationRead .
func MarkNotificationRead(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.MarkNotificationReadReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.NotificationService.MarkRead(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkAllNotificationsRead .
func MarkAllNotificationsRead(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.MarkAllNotificationsReadReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.NotificationService.MarkAllRead(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteNotification .
func DeleteNotification(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.DeleteNotificationReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.NotificationService.DeleteNotification(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetUnreadCount .
func GetUnreadCount(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core.GetUnreadCountReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	p := provider.Get()
	resp, err := p.NotificationService.GetUnreadCount(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
