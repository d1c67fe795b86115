package service

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/basic"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/notification"
	"classhub/biz/infrastructure/util"
	"classhub/biz/infrastructure/util/log"
	page "classhub/biz/infrastructure/util/page"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/wire"
)

type INotificationService interface {
	ListNotifications(ctx context.Context, req *core.ListNotificationsReq) (*core.ListNotificationsResp, error)
	MarkRead(ctx context.Context, req *core.MarkNotificationReadReq) (*basic.Response, error)
	MarkAllRead(ctx context.Context, req *core.MarkAllNotificationsReadReq) (*basic.Response, error)
	DeleteNotification(ctx context.Context, req *core.DeleteNotificationReq) (*basic.Response, error)
	GetUnreadCount(ctx context.Context, req *core.GetUnreadCountReq) (*core.GetUnreadCountResp, error)
}

type NotificationService struct {
	NotificationMapper *notification.MongoMapper
}

var NotificationServiceSet = wire.NewSet(
	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),
)

// notify 落库站内信并异步推送, 推送失败不影响主流程
func notify(ctx context.Context, mapper *notification.MongoMapper, n *notification.Notification) {
	if err := mapper.Insert(ctx, n); err != nil {
		log.CtxError(ctx, "创建通知失败: %v", err)
		return
	}
	gopool.Go(func() {
		if err := util.GetHttpClient().SendPush(context.Background(), n.UserID, n.Title, n.Message); err != nil {
			log.Error("推送通知失败 user=%s: %v", n.UserID, err)
		}
	})
}

// ListNotifications 分页查询当前用户的通知, 新的在前
func (s *NotificationService) ListNotifications(ctx context.Context, req *core.ListNotificationsReq) (*core.ListNotificationsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	skip, limit := page.ParsePageOpt(req.PaginationOptions)
	data, total, err := s.NotificationMapper.FindByUser(ctx, meta.GetUserId(), skip, limit)
	if err != nil {
		log.CtxError(ctx, "查询通知失败: %v", err)
		return nil, consts.ErrGetNotifications
	}
	unread, err := s.NotificationMapper.CountUnread(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrGetNotifications
	}

	infos := make([]*core.NotificationInfo, 0, len(data))
	for _, n := range data {
		infos = append(infos, &core.NotificationInfo{
			Id:         n.ID.Hex(),
			Title:      n.Title,
			Message:    n.Message,
			Type:       n.Type,
			Read:       n.Read,
			SenderId:   n.SenderID,
			SenderName: n.SenderName,
			SenderRole: n.SenderRole,
			ClassId:    n.ClassID,
			ActionUrl:  n.ActionURL,
			CreateTime: n.CreateTime.Unix(),
		})
	}
	return &core.ListNotificationsResp{
		Code:          0,
		Msg:           "查询成功",
		Notifications: infos,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead 已读标记, 只能操作自己的通知
func (s *NotificationService) MarkRead(ctx context.Context, req *core.MarkNotificationReadReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	n, err := s.NotificationMapper.FindOne(ctx, req.NotificationId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if n.UserID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	if err = s.NotificationMapper.MarkRead(ctx, req.NotificationId); err != nil {
		log.CtxError(ctx, "标记已读失败: %v", err)
		return nil, consts.ErrUpdateNotification
	}
	return util.Succeed("标记成功")
}

// MarkAllRead 一键全部已读
func (s *NotificationService) MarkAllRead(ctx context.Context, req *core.MarkAllNotificationsReadReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.NotificationMapper.MarkAllRead(ctx, meta.GetUserId()); err != nil {
		log.CtxError(ctx, "全部已读失败: %v", err)
		return nil, consts.ErrUpdateNotification
	}
	return util.Succeed("标记成功")
}

// DeleteNotification 删除通知, 只能删自己的
func (s *NotificationService) DeleteNotification(ctx context.Context, req *core.DeleteNotificationReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	n, err := s.NotificationMapper.FindOne(ctx, req.NotificationId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if n.UserID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	if err = s.NotificationMapper.Delete(ctx, req.NotificationId); err != nil {
		log.CtxError(ctx, "删除通知失败: %v", err)
		return nil, consts.ErrUpdateNotification
	}
	return util.Succeed("删除成功")
}

// GetUnreadCount 未读数, 供角标轮询
func (s *NotificationService) GetUnreadCount(ctx context.Context, req *core.GetUnreadCountReq) (*core.GetUnreadCountResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	unread, err := s.NotificationMapper.CountUnread(ctx, meta.GetUserId())
	if err != nil {
		log.CtxError(ctx, "查询未读数失败: %v", err)
		return nil, consts.ErrGetNotifications
	}
	return &core.GetUnreadCountResp{
		Code:        0,
		Msg:         "查询成功",
		UnreadCount: unread,
	}, nil
}
