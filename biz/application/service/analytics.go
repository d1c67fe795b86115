package service

import (
	"context"
	"time"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/domain/scheduling"
	"classhub/biz/infrastructure/cache"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/user"
	"classhub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IAnalyticsService interface {
	GetDashboardStats(ctx context.Context, req *core.GetDashboardStatsReq) (*core.GetDashboardStatsResp, error)
	GetAnalytics(ctx context.Context, req *core.GetAnalyticsReq) (*core.GetAnalyticsResp, error)
}

type AnalyticsService struct {
	ClassMapper *class.MongoMapper
	UserMapper  *user.MongoMapper
	StatsCache  *cache.StatsCacheMapper
}

var AnalyticsServiceSet = wire.NewSet(
	wire.Struct(new(AnalyticsService), "*"),
	wire.Bind(new(IAnalyticsService), new(*AnalyticsService)),
)

// GetDashboardStats 管理员仪表盘总览, 带短时缓存
func (s *AnalyticsService) GetDashboardStats(ctx context.Context, req *core.GetDashboardStatsReq) (*core.GetDashboardStatsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil || role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if cached, err := s.StatsCache.Get(ctx); err == nil {
		return &core.GetDashboardStatsResp{
			Code:  0,
			Msg:   "查询成功",
			Stats: toDashboardStatsInfo(cached),
		}, nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, consts.ErrGetStats
	}
	if err = s.StatsCache.Set(ctx, stats); err != nil {
		log.CtxError(ctx, "写入统计缓存失败: %v", err)
	}
	return &core.GetDashboardStatsResp{
		Code:  0,
		Msg:   "查询成功",
		Stats: toDashboardStatsInfo(stats),
	}, nil
}

// GetAnalytics 管理员分析页: 总览 + 状态分布 + 教师榜 + 院系统计 + 双趋势
func (s *AnalyticsService) GetAnalytics(ctx context.Context, req *core.GetAnalyticsReq) (*core.GetAnalyticsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil || role != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	days := consts.DefaultTrendDays
	if req.Days != nil && *req.Days > 0 {
		days = cast.ToInt(*req.Days)
	}

	classes, err := s.ClassMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "查询统计数据失败: %v", err)
		return nil, consts.ErrGetStats
	}
	users, err := s.UserMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "查询统计数据失败: %v", err)
		return nil, consts.ErrGetStats
	}
	teachers := make([]*user.User, 0)
	for _, u := range users {
		if u.Role == consts.RoleTeacher {
			teachers = append(teachers, u)
		}
	}

	now := time.Now()
	stats := scheduling.ComputeDashboardStats(classes, users)

	distribution := scheduling.StatusDistribution(classes)
	distInfos := make([]*core.StatusCountInfo, 0, len(distribution))
	for _, d := range distribution {
		distInfos = append(distInfos, &core.StatusCountInfo{Status: d.Status, Count: d.Count})
	}

	ranks := scheduling.TopTeachersByStudents(classes, teachers, consts.TopTeachersLimit)
	rankInfos := make([]*core.TeacherRankInfo, 0, len(ranks))
	for _, r := range ranks {
		rankInfos = append(rankInfos, &core.TeacherRankInfo{
			TeacherId: r.TeacherID,
			Name:      r.Name,
			Classes:   r.Classes,
			Students:  r.Students,
		})
	}

	deptStats := scheduling.ComputeDepartmentStats(teachers, classes)
	deptInfos := make([]*core.DepartmentStatInfo, 0, len(deptStats))
	for _, d := range deptStats {
		deptInfos = append(deptInfos, &core.DepartmentStatInfo{
			Department: d.Department,
			Teachers:   d.Teachers,
			Classes:    d.Classes,
		})
	}

	userGrowth := scheduling.DailyBuckets(users, days, now,
		func(u *user.User) time.Time { return u.CreateTime },
		func(u *user.User) int64 { return 1 })
	// 报名趋势以课程创建日近似报名日, 名单里没有按次的报名时间
	enrollmentTrend := scheduling.DailyBuckets(classes, days, now,
		func(c *class.Class) time.Time { return c.CreateTime },
		func(c *class.Class) int64 { return int64(len(c.EnrolledStudents)) })

	return &core.GetAnalyticsResp{
		Code:                    0,
		Msg:                     "查询成功",
		Stats:                   toDashboardStatsInfo(stats),
		ClassStatusDistribution: distInfos,
		TopTeachers:             rankInfos,
		DepartmentStats:         deptInfos,
		UserGrowth:              toTrendPoints(userGrowth),
		EnrollmentTrend:         toTrendPoints(enrollmentTrend),
	}, nil
}

func (s *AnalyticsService) computeStats(ctx context.Context) (*scheduling.DashboardStats, error) {
	classes, err := s.ClassMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "查询统计数据失败: %v", err)
		return nil, err
	}
	users, err := s.UserMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "查询统计数据失败: %v", err)
		return nil, err
	}
	return scheduling.ComputeDashboardStats(classes, users), nil
}

func toDashboardStatsInfo(s *scheduling.DashboardStats) *core.DashboardStatsInfo {
	return &core.DashboardStatsInfo{
		TotalTeachers:         s.TotalTeachers,
		ActiveTeachers:        s.ActiveTeachers,
		TotalClasses:          s.TotalClasses,
		ActiveClasses:         s.ActiveClasses,
		CompletedClasses:      s.CompletedClasses,
		TotalStudents:         s.TotalStudents,
		TotalEnrollments:      s.TotalEnrollments,
		AvgEnrollmentPerClass: s.AvgEnrollmentPerClass,
		CompletionRate:        s.CompletionRate,
		UsersByRole:           s.UsersByRole,
	}
}

func toTrendPoints(buckets []scheduling.DayBucket) []*core.TrendPointInfo {
	points := make([]*core.TrendPointInfo, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, &core.TrendPointInfo{Date: b.Date, Value: b.Value})
	}
	return points
}
