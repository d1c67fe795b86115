package service

import (
	"context"
	"time"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/domain/scheduling"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IScheduleService interface {
	GetSchedule(ctx context.Context, req *core.GetScheduleReq) (*core.GetScheduleResp, error)
}

type ScheduleService struct {
	ClassMapper *class.MongoMapper
}

var ScheduleServiceSet = wire.NewSet(
	wire.Struct(new(ScheduleService), "*"),
	wire.Bind(new(IScheduleService), new(*ScheduleService)),
)

// 日历事件配色, 按课程状态区分
var statusColors = map[string]string{
	consts.ClassStatusActive:    "#10b981",
	consts.ClassStatusInactive:  "#9ca3af",
	consts.ClassStatusCompleted: "#6366f1",
}

// GetSchedule 日历视图, 学生看已报名课程, 教师看自己的课, 管理员看全部.
// 不传区间时默认当前自然月
func (s *ScheduleService) GetSchedule(ctx context.Context, req *core.GetScheduleReq) (*core.GetScheduleResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	if req.StartDate != nil {
		from = time.Unix(*req.StartDate, 0)
	}
	if req.EndDate != nil {
		to = time.Unix(*req.EndDate, 0)
	}

	var classes []*class.Class
	switch role {
	case consts.RoleTeacher:
		classes, err = s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
	case consts.RoleAdmin:
		classes, err = s.ClassMapper.FindAll(ctx)
	case consts.RoleStudent:
		classes, err = s.ClassMapper.FindAll(ctx)
		if err == nil {
			classes = scheduling.EnrolledBy(classes, meta.GetUserId())
		}
	}
	if err != nil {
		log.CtxError(ctx, "查询课表失败: %v", err)
		return nil, consts.ErrGetSchedule
	}

	classes = scheduling.WithinRange(classes, from, to)

	events := make([]*core.ScheduleEvent, 0, len(classes))
	for _, c := range classes {
		color, ok := statusColors[c.Status]
		if !ok {
			color = statusColors[consts.ClassStatusInactive]
		}
		events = append(events, &core.ScheduleEvent{
			Id:     c.ID.Hex(),
			Title:  c.Title,
			Start:  c.StartTime.Unix(),
			End:    c.EndTime.Unix(),
			Color:  color,
			IsLive: scheduling.IsLive(c.StartTime, c.EndTime, now),
			Class:  toClassInfo(c, now),
		})
	}
	return &core.GetScheduleResp{
		Code:   0,
		Msg:    "查询成功",
		Events: events,
		Total:  int64(len(events)),
	}, nil
}
