package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 认证与权限
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Code(1001), errors.New("登录失败，请重试"))
)

// 课程校验错误, 按校验顺序编码
var (
	ErrEmptyTitle         = NewErrno(codes.Code(1101), errors.New("课程标题不能为空"))
	ErrStartInPast        = NewErrno(codes.Code(1102), errors.New("开始时间不能早于当前时间"))
	ErrEndInPast          = NewErrno(codes.Code(1103), errors.New("结束时间不能早于当前时间"))
	ErrEndBeforeStart     = NewErrno(codes.Code(1104), errors.New("结束时间必须晚于开始时间"))
	ErrInvalidCapacity    = NewErrno(codes.Code(1105), errors.New("课程容量至少为1"))
	ErrInvalidMeetingLink = NewErrno(codes.Code(1106), errors.New("会议链接格式不正确"))
	ErrInvalidStatus      = NewErrno(codes.Code(1107), errors.New("课程状态不合法"))
)

// 选课错误
var (
	ErrAlreadyEnrolled = NewErrno(codes.Code(1201), errors.New("已报名该课程"))
	ErrClassFull       = NewErrno(codes.Code(1202), errors.New("课程人数已满"))
	ErrClassNotActive  = NewErrno(codes.Code(1203), errors.New("课程未开放报名"))
	ErrNotEnrolled     = NewErrno(codes.Code(1204), errors.New("未报名该课程"))
)

// 业务错误
var (
	ErrCreateClass        = NewErrno(codes.Code(1301), errors.New("创建课程失败"))
	ErrUpdateClass        = NewErrno(codes.Code(1302), errors.New("更新课程失败"))
	ErrDeleteClass        = NewErrno(codes.Code(1303), errors.New("删除课程失败"))
	ErrGetClassList       = NewErrno(codes.Code(1304), errors.New("获取课程列表失败"))
	ErrEnroll             = NewErrno(codes.Code(1305), errors.New("报名失败，请重试"))
	ErrUnenroll           = NewErrno(codes.Code(1306), errors.New("退课失败，请重试"))
	ErrGetSchedule        = NewErrno(codes.Code(1307), errors.New("获取课程表失败"))
	ErrGetStats           = NewErrno(codes.Code(1308), errors.New("获取统计数据失败"))
	ErrGetNotifications   = NewErrno(codes.Code(1309), errors.New("获取通知失败"))
	ErrUpdateNotification = NewErrno(codes.Code(1310), errors.New("更新通知失败"))
	ErrUploadAvatar       = NewErrno(codes.Code(1311), errors.New("头像上传失败，请重试"))
	ErrInvalidAvatarType  = NewErrno(codes.Code(1312), errors.New("仅支持 JPEG/PNG/WebP 格式的图片"))
	ErrAvatarTooLarge     = NewErrno(codes.Code(1313), errors.New("图片大小不能超过5MB"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
