package scheduling

import (
	"strings"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"

	"github.com/samber/lo"
)

// 课程列表/日历视图的筛选, 全部保持输入顺序

// ByTeacher 教师视角: 只看自己的课程
func ByTeacher(classes []*class.Class, teacherID string) []*class.Class {
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return c.TeacherID == teacherID
	})
}

// EnrolledBy 学生视角之一: 已报名的课程
func EnrolledBy(classes []*class.Class, studentID string) []*class.Class {
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return IsEnrolled(c, studentID)
	})
}

// ActiveOnly 学生视角之二: 可报名发现页, 和已报名列表是两个独立查询
func ActiveOnly(classes []*class.Class) []*class.Class {
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return c.Status == consts.ClassStatusActive
	})
}

// WithinRange 开始时间落在 [from,to] 闭区间内的课程, 供日历按月取数
func WithinRange(classes []*class.Class, from, to time.Time) []*class.Class {
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return !c.StartTime.Before(from) && !c.StartTime.After(to)
	})
}

// Search 标题/教师姓名/科目的大小写无关子串匹配, 空串返回原列表
func Search(classes []*class.Class, term string) []*class.Class {
	if term == "" {
		return classes
	}
	t := strings.ToLower(term)
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return strings.Contains(strings.ToLower(c.Title), t) ||
			strings.Contains(strings.ToLower(c.TeacherInfo.Name), t) ||
			strings.Contains(strings.ToLower(c.Subject), t)
	})
}

// ByStatus status 为 "all" 或空时不过滤
func ByStatus(classes []*class.Class, status string) []*class.Class {
	if status == "" || status == "all" {
		return classes
	}
	return lo.Filter(classes, func(c *class.Class, _ int) bool {
		return c.Status == status
	})
}
