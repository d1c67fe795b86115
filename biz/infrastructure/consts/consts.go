package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID         = "_id"
	UserID     = "user_id"
	TeacherID  = "teacher_id"
	Status     = "status"
	Read       = "read"
	StartTime  = "start_time"
	CreateTime = "create_time"
)

// Role 用户角色, 闭合枚举
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// 课程状态
const (
	ClassStatusActive    = "active"
	ClassStatusInactive  = "inactive"
	ClassStatusCompleted = "completed"
)

// 通知类型
const (
	NotificationTypeInfo       = "info"
	NotificationTypeSuccess    = "success"
	NotificationTypeWarning    = "warning"
	NotificationTypeError      = "error"
	NotificationTypeClass      = "class"
	NotificationTypeEnrollment = "enrollment"
	NotificationTypeSystem     = "system"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
)

// 默认值
const (
	DefaultMaxStudents   = 30
	DefaultTrendDays     = 30
	TopTeachersLimit     = 5
	AvatarFolder         = "avatars"
	AvatarMaxBytes       = 5 * 1024 * 1024
	DashboardStatsTTL    = 60 // 仪表盘统计缓存秒数
	NotificationPageSize = 50
)

// AvatarContentTypes 允许上传的头像类型
var AvatarContentTypes = []string{"image/jpeg", "image/png", "image/webp"}
