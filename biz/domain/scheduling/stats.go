package scheduling

import (
	"math"
	"sort"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/user"

	"github.com/samber/lo"
)

// 聚合统计: 沿用 "全量拉取 + 内存归约" 的口径, 入参是已经物化好的集合.
// 取数方式将来换成服务端聚合时, 这一层不需要动.

type DashboardStats struct {
	TotalTeachers         int64            `json:"totalTeachers"`
	ActiveTeachers        int64            `json:"activeTeachers"`
	TotalClasses          int64            `json:"totalClasses"`
	ActiveClasses         int64            `json:"activeClasses"`
	CompletedClasses      int64            `json:"completedClasses"`
	TotalStudents         int64            `json:"totalStudents"`
	TotalEnrollments      int64            `json:"totalEnrollments"`
	AvgEnrollmentPerClass float64          `json:"avgEnrollmentPerClass"`
	CompletionRate        float64          `json:"completionRate"`
	UsersByRole           map[string]int64 `json:"usersByRole"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TeacherRank struct {
	TeacherID string `json:"teacherId"`
	Name      string `json:"name"`
	Classes   int64  `json:"classes"`
	Students  int64  `json:"students"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Teachers   int64  `json:"teachers"`
	Classes    int64  `json:"classes"`
}

type DayBucket struct {
	Date  string `json:"date"` // ISO 日期
	Value int64  `json:"value"`
}

// ComputeDashboardStats 仪表盘总览
func ComputeDashboardStats(classes []*class.Class, users []*user.User) *DashboardStats {
	active := lo.Filter(classes, func(c *class.Class, _ int) bool {
		return c.Status == consts.ClassStatusActive
	})
	completed := lo.CountBy(classes, func(c *class.Class) bool {
		return c.Status == consts.ClassStatusCompleted
	})
	activeTeachers := lo.UniqBy(active, func(c *class.Class) string {
		return c.TeacherID
	})

	enrollments := lo.SumBy(classes, func(c *class.Class) int64 {
		return int64(len(c.EnrolledStudents))
	})

	byRole := make(map[string]int64)
	for _, u := range users {
		byRole[string(u.Role)]++
	}

	avg, rate := 0.0, 0.0
	if len(classes) > 0 {
		avg = round1(float64(enrollments) / float64(len(classes)))
		rate = round1(float64(completed) / float64(len(classes)) * 100)
	}

	return &DashboardStats{
		TotalTeachers:         byRole[string(consts.RoleTeacher)],
		ActiveTeachers:        int64(len(activeTeachers)),
		TotalClasses:          int64(len(classes)),
		ActiveClasses:         int64(len(active)),
		CompletedClasses:      int64(completed),
		TotalStudents:         byRole[string(consts.RoleStudent)],
		TotalEnrollments:      enrollments,
		AvgEnrollmentPerClass: avg,
		CompletionRate:        rate,
		UsersByRole:           byRole,
	}
}

// StatusDistribution 三种状态固定顺序输出, 缺失的状态补零
func StatusDistribution(classes []*class.Class) []StatusCount {
	order := []string{consts.ClassStatusActive, consts.ClassStatusCompleted, consts.ClassStatusInactive}
	counts := lo.CountValuesBy(classes, func(c *class.Class) string {
		return c.Status
	})
	result := make([]StatusCount, 0, len(order))
	for _, s := range order {
		result = append(result, StatusCount{Status: s, Count: int64(counts[s])})
	}
	return result
}

// TopTeachersByStudents 按报名人数降序取前 topN 位教师.
// 人数相同时按姓名升序, 保证输出确定
func TopTeachersByStudents(classes []*class.Class, teachers []*user.User, topN int) []TeacherRank {
	ranks := lo.Map(teachers, func(t *user.User, _ int) TeacherRank {
		own := lo.Filter(classes, func(c *class.Class, _ int) bool {
			return c.TeacherID == t.ID
		})
		return TeacherRank{
			TeacherID: t.ID,
			Name:      t.Name,
			Classes:   int64(len(own)),
			Students: lo.SumBy(own, func(c *class.Class) int64 {
				return int64(len(c.EnrolledStudents))
			}),
		}
	})

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Students != ranks[j].Students {
			return ranks[i].Students > ranks[j].Students
		}
		return ranks[i].Name < ranks[j].Name
	})

	if topN >= 0 && len(ranks) > topN {
		ranks = ranks[:topN]
	}
	return ranks
}

// ComputeDepartmentStats 每个非空院系一行
func ComputeDepartmentStats(teachers []*user.User, classes []*class.Class) []DepartmentStat {
	byDept := lo.GroupBy(lo.Filter(teachers, func(t *user.User, _ int) bool {
		return t.Department != ""
	}), func(t *user.User) string {
		return t.Department
	})

	depts := lo.Keys(byDept)
	sort.Strings(depts)

	result := make([]DepartmentStat, 0, len(depts))
	for _, d := range depts {
		ids := lo.Map(byDept[d], func(t *user.User, _ int) string { return t.ID })
		classCount := lo.CountBy(classes, func(c *class.Class) bool {
			return lo.Contains(ids, c.TeacherID)
		})
		result = append(result, DepartmentStat{
			Department: d,
			Teachers:   int64(len(byDept[d])),
			Classes:    int64(classCount),
		})
	}
	return result
}

// EnrollmentRollup 单个学生视角的课程计数
type EnrollmentRollup struct {
	Enrolled  int64 `json:"enrolled"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// TeacherRollup 单个教师视角的开课计数, Students 计报名人次
type TeacherRollup struct {
	Classes   int64 `json:"classes"`
	Students  int64 `json:"students"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

// RollupForStudent 学生花名册行: 已报名课程按状态分桶
func RollupForStudent(classes []*class.Class, studentID string) EnrollmentRollup {
	mine := lo.Filter(classes, func(c *class.Class, _ int) bool {
		return IsEnrolled(c, studentID)
	})
	return EnrollmentRollup{
		Enrolled: int64(len(mine)),
		Active: int64(lo.CountBy(mine, func(c *class.Class) bool {
			return c.Status == consts.ClassStatusActive
		})),
		Completed: int64(lo.CountBy(mine, func(c *class.Class) bool {
			return c.Status == consts.ClassStatusCompleted
		})),
	}
}

// RollupForTeacher 教师列表行: 开课数与累计报名人次
func RollupForTeacher(classes []*class.Class, teacherID string) TeacherRollup {
	mine := ByTeacher(classes, teacherID)
	return TeacherRollup{
		Classes: int64(len(mine)),
		Students: lo.SumBy(mine, func(c *class.Class) int64 {
			return int64(len(c.EnrolledStudents))
		}),
		Active: int64(lo.CountBy(mine, func(c *class.Class) bool {
			return c.Status == consts.ClassStatusActive
		})),
		Completed: int64(lo.CountBy(mine, func(c *class.Class) bool {
			return c.Status == consts.ClassStatusCompleted
		})),
	}
}

// DailyBuckets 以 now 所在日期为末端构造 days 个零值日桶,
// 再把每条记录的取值累加进对应日期的桶, 窗口外的记录丢弃.
// 用户增长与报名趋势共用这一个助手
func DailyBuckets[T any](records []T, days int, now time.Time,
	dateOf func(T) time.Time, valueOf func(T) int64) []DayBucket {
	if days <= 0 {
		return []DayBucket{}
	}

	buckets := make([]DayBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := now.AddDate(0, 0, i-(days-1)).Format("2006-01-02")
		buckets[i] = DayBucket{Date: key}
		index[key] = i
	}

	// 记录时间统一换算到 now 的时区再取日期, 否则跨时区存储的
	// 时间戳在午夜附近会落进相邻的桶
	loc := now.Location()
	for _, r := range records {
		key := dateOf(r).In(loc).Format("2006-01-02")
		if i, ok := index[key]; ok {
			buckets[i].Value += valueOf(r)
		}
	}
	return buckets
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
