package service

import (
	"context"
	"fmt"
	"time"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/basic"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/domain/scheduling"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/notification"
	"classhub/biz/infrastructure/repository/user"
	"classhub/biz/infrastructure/util"
	"classhub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *core.CreateClassReq) (*core.CreateClassResp, error)
	UpdateClass(ctx context.Context, req *core.UpdateClassReq) (*basic.Response, error)
	DeleteClass(ctx context.Context, req *core.DeleteClassReq) (*basic.Response, error)
	GetClass(ctx context.Context, req *core.GetClassReq) (*core.GetClassResp, error)
	ListClasses(ctx context.Context, req *core.ListClassesReq) (*core.ListClassesResp, error)
	Enroll(ctx context.Context, req *core.EnrollReq) (*basic.Response, error)
	Unenroll(ctx context.Context, req *core.UnenrollReq) (*basic.Response, error)
}

type ClassService struct {
	ClassMapper        *class.MongoMapper
	UserMapper         *user.MongoMapper
	NotificationMapper *notification.MongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建课程, 仅限教师, 教师信息在此刻快照进课程
func (s *ClassService) CreateClass(ctx context.Context, req *core.CreateClassReq) (*core.CreateClassResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil || role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	teacher, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	c := &class.Class{
		Title:     req.Title,
		TeacherID: teacher.ID,
		TeacherInfo: class.TeacherSnapshot{
			ID:      teacher.ID,
			Name:    teacher.Name,
			Email:   teacher.Email,
			Subject: teacher.Subject,
		},
		StartTime:   time.Unix(req.StartTime, 0),
		MaxStudents: consts.DefaultMaxStudents,
		MeetingLink: req.MeetingLink,
		Duration:    req.Duration,
	}
	if req.EndTime != 0 {
		c.EndTime = time.Unix(req.EndTime, 0)
	} else {
		c.EndTime = scheduling.DefaultEndFor(c.StartTime)
	}
	if req.MaxStudents != nil {
		c.MaxStudents = *req.MaxStudents
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Subject != nil {
		c.Subject = *req.Subject
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err = scheduling.ValidateForCreate(c, time.Now()); err != nil {
		return nil, err
	}

	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, consts.ErrCreateClass
	}

	return &core.CreateClassResp{
		Code:    0,
		Msg:     "创建成功",
		ClassId: c.ID.Hex(),
		Class:   toClassInfo(c, time.Now()),
	}, nil
}

// UpdateClass 更新课程, 只有任课教师本人可以编辑
func (s *ClassService) UpdateClass(ctx context.Context, req *core.UpdateClassReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !scheduling.CanEdit(c, meta.GetUserId(), role) {
		return nil, consts.ErrForbidden
	}

	patch := &scheduling.ClassPatch{
		Title:       req.Title,
		MaxStudents: req.MaxStudents,
		MeetingLink: req.MeetingLink,
		Status:      req.Status,
		Duration:    req.Duration,
		Subject:     req.Subject,
		Description: req.Description,
	}
	if req.StartTime != nil {
		t := time.Unix(*req.StartTime, 0)
		patch.StartTime = &t
	}
	if req.EndTime != nil {
		t := time.Unix(*req.EndTime, 0)
		patch.EndTime = &t
	}

	updated, err := scheduling.ValidateForUpdate(c, patch)
	if err != nil {
		return nil, err
	}

	if err = s.ClassMapper.Update(ctx, updated); err != nil {
		log.CtxError(ctx, "更新课程失败: %v", err)
		return nil, consts.ErrUpdateClass
	}
	return util.Succeed("更新成功")
}

// DeleteClass 删除课程, 任课教师或管理员, 已报名学生会收到取消通知
func (s *ClassService) DeleteClass(ctx context.Context, req *core.DeleteClassReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !scheduling.CanDelete(c, meta.GetUserId(), role) {
		return nil, consts.ErrForbidden
	}

	if err = s.ClassMapper.Delete(ctx, req.ClassId); err != nil {
		log.CtxError(ctx, "删除课程失败: %v", err)
		return nil, consts.ErrDeleteClass
	}

	for _, studentId := range c.EnrolledStudents {
		notify(ctx, s.NotificationMapper, &notification.Notification{
			UserID:     studentId,
			Title:      "课程已取消",
			Message:    fmt.Sprintf("课程「%s」已被取消", c.Title),
			Type:       consts.NotificationTypeClass,
			SenderID:   meta.GetUserId(),
			SenderRole: string(role),
			ClassID:    req.ClassId,
		})
	}
	return util.Succeed("删除成功")
}

// GetClass 课程详情, 附带当前用户视角的报名与入会判定
func (s *ClassService) GetClass(ctx context.Context, req *core.GetClassReq) (*core.GetClassResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	enrolled := scheduling.IsEnrolled(c, meta.GetUserId())
	return &core.GetClassResp{
		Code:           0,
		Msg:            "查询成功",
		Class:          toClassInfo(c, time.Now()),
		IsEnrolled:     enrolled,
		CanJoinMeeting: scheduling.CanJoinMeeting(c, meta.GetUserId(), role, enrolled),
	}, nil
}

// ListClasses 按角色圈定可见范围, 再叠加搜索与状态过滤
func (s *ClassService) ListClasses(ctx context.Context, req *core.ListClassesReq) (*core.ListClassesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	var classes []*class.Class
	switch role {
	case consts.RoleTeacher:
		classes, err = s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
	case consts.RoleAdmin:
		classes, err = s.ClassMapper.FindAll(ctx)
	case consts.RoleStudent:
		switch enrollmentScope(req.Enrollment) {
		case "enrolled":
			classes, err = s.ClassMapper.FindAll(ctx)
			if err == nil {
				classes = scheduling.EnrolledBy(classes, meta.GetUserId())
			}
		case "all":
			classes, err = s.ClassMapper.FindAll(ctx)
		default:
			// 发现页只展示可报名的课程
			classes, err = s.ClassMapper.FindByStatus(ctx, consts.ClassStatusActive)
		}
	}
	if err != nil {
		log.CtxError(ctx, "查询课程列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}

	if req.SearchTerm != nil {
		classes = scheduling.Search(classes, *req.SearchTerm)
	}
	if req.Status != nil {
		classes = scheduling.ByStatus(classes, *req.Status)
	}

	now := time.Now()
	infos := make([]*core.ClassInfo, 0, len(classes))
	for _, c := range classes {
		infos = append(infos, toClassInfo(c, now))
	}
	return &core.ListClassesResp{
		Code:    0,
		Msg:     "查询成功",
		Classes: infos,
		Total:   int64(len(infos)),
	}, nil
}

// Enroll 学生报名课程, 报名成功后通知任课教师
func (s *ClassService) Enroll(ctx context.Context, req *core.EnrollReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil || role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	updated, err := scheduling.Enroll(c, meta.GetUserId())
	if err != nil {
		return nil, err
	}
	if err = s.ClassMapper.Update(ctx, updated); err != nil {
		log.CtxError(ctx, "报名失败: %v", err)
		return nil, consts.ErrEnroll
	}

	student, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	senderName := ""
	if err == nil {
		senderName = student.Name
	}
	notify(ctx, s.NotificationMapper, &notification.Notification{
		UserID:     c.TeacherID,
		Title:      "新学生报名",
		Message:    fmt.Sprintf("%s 报名了课程「%s」", senderName, c.Title),
		Type:       consts.NotificationTypeEnrollment,
		SenderID:   meta.GetUserId(),
		SenderName: senderName,
		SenderRole: string(consts.RoleStudent),
		ClassID:    req.ClassId,
	})
	return util.Succeed("报名成功")
}

// Unenroll 学生退课
func (s *ClassService) Unenroll(ctx context.Context, req *core.UnenrollReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil || role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	updated, err := scheduling.Unenroll(c, meta.GetUserId())
	if err != nil {
		return nil, err
	}
	if err = s.ClassMapper.Update(ctx, updated); err != nil {
		log.CtxError(ctx, "退课失败: %v", err)
		return nil, consts.ErrUnenroll
	}
	return util.Succeed("退课成功")
}

func enrollmentScope(p *string) string {
	if p == nil {
		return "available"
	}
	return *p
}

// toClassInfo 实体转视图, 时间戳与在线状态在此换算
func toClassInfo(c *class.Class, now time.Time) *core.ClassInfo {
	info := &core.ClassInfo{}
	if err := copier.Copy(info, c); err != nil {
		log.Error("课程信息转换失败: %v", err)
	}
	info.Id = c.ID.Hex()
	info.TeacherId = c.TeacherID
	info.TeacherInfo = core.TeacherSnapshotInfo{
		Id:      c.TeacherInfo.ID,
		Name:    c.TeacherInfo.Name,
		Email:   c.TeacherInfo.Email,
		Subject: c.TeacherInfo.Subject,
	}
	info.StartTime = c.StartTime.Unix()
	info.EndTime = c.EndTime.Unix()
	info.CreateTime = c.CreateTime.Unix()
	info.EnrolledCount = int64(len(c.EnrolledStudents))
	info.IsLive = scheduling.IsLive(c.StartTime, c.EndTime, now)
	return info
}
