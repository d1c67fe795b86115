package main

import (
	handler "classhub/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	user := r.Group("/user")
	{
		user.POST("/sign_in", handler.SignIn)
		user.GET("/info", handler.GetUserInfo)
		user.POST("/update", handler.UpdateUserInfo)
		user.POST("/avatar", handler.UpdateAvatar)
		user.GET("/list", handler.ListUsers)
	}

	class := r.Group("/class")
	{
		class.POST("/create", handler.CreateClass)
		class.POST("/update", handler.UpdateClass)
		class.POST("/delete", handler.DeleteClass)
		class.GET("/detail", handler.GetClass)
		class.GET("/list", handler.ListClasses)
		class.POST("/enroll", handler.Enroll)
		class.POST("/unenroll", handler.Unenroll)
	}

	r.GET("/schedule", handler.GetSchedule)

	analytics := r.Group("/analytics")
	{
		analytics.GET("/dashboard", handler.GetDashboardStats)
		analytics.GET("/full", handler.GetAnalytics)
	}

	notification := r.Group("/notification")
	{
		notification.GET("/list", handler.ListNotifications)
		notification.POST("/read", handler.MarkNotificationRead)
		notification.POST("/read_all", handler.MarkAllNotificationsRead)
		notification.POST("/delete", handler.DeleteNotification)
		notification.GET("/unread_count", handler.GetUnreadCount)
	}

	sts := r.Group("/sts")
	{
		sts.POST("/apply_avatar_upload", handler.ApplyAvatarUpload)
		sts.POST("/delete_asset", handler.DeleteAsset)
	}
}
