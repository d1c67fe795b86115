package scheduling

import (
	"net/url"
	"strings"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
)

// ClassPatch 更新课程时允许修改的字段, nil 表示保持原值.
// id/teacher_id/enrolled_students 永远不走这条路径, 选课变更见 enrollment.go
type ClassPatch struct {
	Title       *string
	StartTime   *time.Time
	EndTime     *time.Time
	MaxStudents *int64
	MeetingLink *string
	Status      *string
	Duration    *string
	Subject     *string
	Description *string
}

// ValidateForCreate 按顺序校验待创建的课程, 第一个失败即返回.
// 通过后就地规范化: 清空名单, 状态缺省为 active
func ValidateForCreate(c *class.Class, now time.Time) error {
	if strings.TrimSpace(c.Title) == "" {
		return consts.ErrEmptyTitle
	}
	if !NotInPast(c.StartTime, now) {
		return consts.ErrStartInPast
	}
	if !NotInPast(c.EndTime, now) {
		return consts.ErrEndInPast
	}
	if !IsValidWindow(c.StartTime, c.EndTime) {
		return consts.ErrEndBeforeStart
	}
	if c.MaxStudents < 1 {
		return consts.ErrInvalidCapacity
	}
	if !validMeetingLink(c.MeetingLink) {
		return consts.ErrInvalidMeetingLink
	}
	if c.Status != "" && !validStatus(c.Status) {
		return consts.ErrInvalidStatus
	}

	c.EnrolledStudents = []string{}
	if c.Status == "" {
		c.Status = consts.ClassStatusActive
	}
	return nil
}

// ValidateForUpdate 只校验 patch 中出现的字段, 返回合并后的新记录, 不修改入参
func ValidateForUpdate(existing *class.Class, patch *ClassPatch) (*class.Class, error) {
	next := *existing
	next.EnrolledStudents = append([]string{}, existing.EnrolledStudents...)

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, consts.ErrEmptyTitle
		}
		next.Title = *patch.Title
	}
	if patch.StartTime != nil {
		next.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		next.EndTime = *patch.EndTime
	}
	if patch.StartTime != nil || patch.EndTime != nil {
		if !IsValidWindow(next.StartTime, next.EndTime) {
			return nil, consts.ErrEndBeforeStart
		}
	}
	if patch.MaxStudents != nil {
		if *patch.MaxStudents < 1 {
			return nil, consts.ErrInvalidCapacity
		}
		next.MaxStudents = *patch.MaxStudents
	}
	if patch.MeetingLink != nil {
		if !validMeetingLink(*patch.MeetingLink) {
			return nil, consts.ErrInvalidMeetingLink
		}
		next.MeetingLink = *patch.MeetingLink
	}
	if patch.Status != nil {
		if !validStatus(*patch.Status) {
			return nil, consts.ErrInvalidStatus
		}
		// completed 不是终态, 允许改回 active
		next.Status = *patch.Status
	}
	if patch.Duration != nil {
		next.Duration = *patch.Duration
	}
	if patch.Subject != nil {
		next.Subject = *patch.Subject
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	return &next, nil
}

func validStatus(s string) bool {
	switch s {
	case consts.ClassStatusActive, consts.ClassStatusInactive, consts.ClassStatusCompleted:
		return true
	default:
		return false
	}
}

func validMeetingLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
