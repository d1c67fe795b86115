package core

import "classhub/biz/application/dto/basic"

type NotificationInfo struct {
	Id         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Read       bool   `json:"read"`
	SenderId   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	SenderRole string `json:"senderRole,omitempty"`
	ClassId    string `json:"classId,omitempty"`
	ActionUrl  string `json:"actionUrl,omitempty"`
	CreateTime int64  `json:"createTime"`
}

type ListNotificationsReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListNotificationsResp struct {
	Code          int64               `json:"code"`
	Msg           string              `json:"msg"`
	Notifications []*NotificationInfo `json:"notifications"`
	Total         int64               `json:"total"`
	UnreadCount   int64               `json:"unreadCount"`
}

type MarkNotificationReadReq struct {
	NotificationId string `json:"notificationId"`
}

type MarkAllNotificationsReadReq struct {
}

type DeleteNotificationReq struct {
	NotificationId string `json:"notificationId"`
}

type GetUnreadCountReq struct {
}

type GetUnreadCountResp struct {
	Code        int64  `json:"code"`
	Msg         string `json:"msg"`
	UnreadCount int64  `json:"unreadCount"`
}
