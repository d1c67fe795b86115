package scheduling

import (
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"

	"github.com/samber/lo"
)

// 选课策略: 全部是纯判定/纯转换, 读-改-写的原子性由调用方对接存储层解决.
// 两个并发的 Enroll 可能都看到未满的名单, 这里不做跨请求的保护.

// IsEnrolled 学生是否在名单内
func IsEnrolled(c *class.Class, studentID string) bool {
	return lo.Contains(c.EnrolledStudents, studentID)
}

// CanEnroll 课程开放报名、未重复报名且未满员
func CanEnroll(c *class.Class, studentID string) bool {
	return c.Status == consts.ClassStatusActive &&
		!IsEnrolled(c, studentID) &&
		int64(len(c.EnrolledStudents)) < c.MaxStudents
}

// Enroll 返回追加了 studentID 的新记录, 入参不变
func Enroll(c *class.Class, studentID string) (*class.Class, error) {
	if IsEnrolled(c, studentID) {
		return nil, consts.ErrAlreadyEnrolled
	}
	if c.Status != consts.ClassStatusActive {
		return nil, consts.ErrClassNotActive
	}
	if int64(len(c.EnrolledStudents)) >= c.MaxStudents {
		return nil, consts.ErrClassFull
	}
	next := *c
	next.EnrolledStudents = append(append([]string{}, c.EnrolledStudents...), studentID)
	return &next, nil
}

// CanUnenroll 退课不受课程状态限制, 只要在名单内
func CanUnenroll(c *class.Class, studentID string) bool {
	return IsEnrolled(c, studentID)
}

// Unenroll 返回移除了 studentID 的新记录, 保持其余学生的相对顺序
func Unenroll(c *class.Class, studentID string) (*class.Class, error) {
	if !IsEnrolled(c, studentID) {
		return nil, consts.ErrNotEnrolled
	}
	next := *c
	next.EnrolledStudents = lo.Without(c.EnrolledStudents, studentID)
	return &next, nil
}

// CanEdit 仅课程归属的教师可编辑
func CanEdit(c *class.Class, userID string, role consts.Role) bool {
	switch role {
	case consts.RoleTeacher:
		return c.TeacherID == userID
	case consts.RoleStudent, consts.RoleAdmin:
		return false
	default:
		return false
	}
}

// CanDelete 归属教师或管理员
func CanDelete(c *class.Class, userID string, role consts.Role) bool {
	switch role {
	case consts.RoleAdmin:
		return true
	case consts.RoleTeacher:
		return CanEdit(c, userID, role)
	case consts.RoleStudent:
		return false
	default:
		return false
	}
}

// CanJoinMeeting 教师与管理员随时可进会, 学生需在名单内
func CanJoinMeeting(c *class.Class, userID string, role consts.Role, enrolled bool) bool {
	switch role {
	case consts.RoleTeacher, consts.RoleAdmin:
		return true
	case consts.RoleStudent:
		return enrolled
	default:
		return false
	}
}
