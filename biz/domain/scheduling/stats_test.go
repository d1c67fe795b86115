package scheduling

import (
	"reflect"
	"testing"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/user"
)

func cls(teacherID, status string, roster ...string) *class.Class {
	if roster == nil {
		roster = []string{}
	}
	return &class.Class{
		TeacherID:        teacherID,
		Status:           status,
		EnrolledStudents: roster,
	}
}

func usr(id, name string, role consts.Role) *user.User {
	return &user.User{ID: id, Name: name, Role: role}
}

func TestComputeDashboardStats(t *testing.T) {
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive, "a", "b"),
		cls("T1", consts.ClassStatusCompleted),
		cls("T2", consts.ClassStatusActive, "c"),
	}
	users := []*user.User{
		usr("T1", "Ann", consts.RoleTeacher),
		usr("T2", "Bob", consts.RoleTeacher),
		usr("T3", "Cid", consts.RoleTeacher),
		usr("S1", "Dee", consts.RoleStudent),
		usr("A1", "Eve", consts.RoleAdmin),
	}

	got := ComputeDashboardStats(classes, users)

	if got.TotalClasses != 3 || got.ActiveClasses != 2 || got.CompletedClasses != 1 {
		t.Errorf("class counts = %d/%d/%d, want 3/2/1",
			got.TotalClasses, got.ActiveClasses, got.CompletedClasses)
	}
	if got.TotalEnrollments != 3 {
		t.Errorf("TotalEnrollments = %d, want 3", got.TotalEnrollments)
	}
	if got.AvgEnrollmentPerClass != 1.0 {
		t.Errorf("AvgEnrollmentPerClass = %v, want 1.0", got.AvgEnrollmentPerClass)
	}
	if got.CompletionRate != 33.3 {
		t.Errorf("CompletionRate = %v, want 33.3", got.CompletionRate)
	}
	// T1 和 T2 有 active 课程, T3 没有
	if got.ActiveTeachers != 2 {
		t.Errorf("ActiveTeachers = %d, want 2", got.ActiveTeachers)
	}
	if got.TotalTeachers != 3 || got.TotalStudents != 1 {
		t.Errorf("TotalTeachers/TotalStudents = %d/%d, want 3/1", got.TotalTeachers, got.TotalStudents)
	}
	if got.UsersByRole["admin"] != 1 {
		t.Errorf("UsersByRole[admin] = %d, want 1", got.UsersByRole["admin"])
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	got := ComputeDashboardStats(nil, nil)
	if got.AvgEnrollmentPerClass != 0 || got.CompletionRate != 0 {
		t.Errorf("rates on empty input = %v/%v, want 0/0",
			got.AvgEnrollmentPerClass, got.CompletionRate)
	}
}

// 空集合也输出三行零值, 顺序固定
func TestStatusDistributionZeroFill(t *testing.T) {
	got := StatusDistribution(nil)
	want := []StatusCount{
		{Status: consts.ClassStatusActive, Count: 0},
		{Status: consts.ClassStatusCompleted, Count: 0},
		{Status: consts.ClassStatusInactive, Count: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StatusDistribution(nil) = %v, want %v", got, want)
	}
}

func TestStatusDistribution(t *testing.T) {
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive),
		cls("T1", consts.ClassStatusActive),
		cls("T2", consts.ClassStatusInactive),
	}
	got := StatusDistribution(classes)
	want := []StatusCount{
		{Status: consts.ClassStatusActive, Count: 2},
		{Status: consts.ClassStatusCompleted, Count: 0},
		{Status: consts.ClassStatusInactive, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StatusDistribution() = %v, want %v", got, want)
	}
}

func TestTopTeachersByStudents(t *testing.T) {
	teachers := []*user.User{
		usr("T1", "Zoe", consts.RoleTeacher),
		usr("T2", "Amy", consts.RoleTeacher),
		usr("T3", "Ben", consts.RoleTeacher),
	}
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive, "a", "b"),
		cls("T2", consts.ClassStatusActive, "c", "d"),
		cls("T3", consts.ClassStatusActive, "e", "f", "g"),
	}

	got := TopTeachersByStudents(classes, teachers, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].TeacherID != "T3" || got[0].Students != 3 {
		t.Errorf("first rank = %+v, want T3 with 3 students", got[0])
	}
	// T1 与 T2 同为 2 人, 按姓名升序 Amy 在前
	if got[1].TeacherID != "T2" {
		t.Errorf("tie should break by name ascending, got %+v", got[1])
	}
}

func TestComputeDepartmentStats(t *testing.T) {
	teachers := []*user.User{
		{ID: "T1", Name: "Ann", Role: consts.RoleTeacher, Department: "Math"},
		{ID: "T2", Name: "Bob", Role: consts.RoleTeacher, Department: "Math"},
		{ID: "T3", Name: "Cid", Role: consts.RoleTeacher, Department: "Arts"},
		{ID: "T4", Name: "Dee", Role: consts.RoleTeacher}, // 无院系, 不出现
	}
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive),
		cls("T2", consts.ClassStatusActive),
		cls("T4", consts.ClassStatusActive),
	}

	got := ComputeDepartmentStats(teachers, classes)
	want := []DepartmentStat{
		{Department: "Arts", Teachers: 1, Classes: 0},
		{Department: "Math", Teachers: 2, Classes: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeDepartmentStats() = %v, want %v", got, want)
	}
}

func TestDailyBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	type rec struct {
		at time.Time
		n  int64
	}
	records := []rec{
		{at: day(0), n: 2},
		{at: day(-1), n: 1},
		{at: day(-1), n: 4},
		{at: day(-3), n: 7}, // 窗口外
		{at: day(1), n: 9},  // 未来, 窗口外
	}

	got := DailyBuckets(records, 3, now,
		func(r rec) time.Time { return r.at },
		func(r rec) int64 { return r.n })

	want := []DayBucket{
		{Date: "2026-03-08", Value: 0},
		{Date: "2026-03-09", Value: 5},
		{Date: "2026-03-10", Value: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DailyBuckets() = %v, want %v", got, want)
	}
}

// 记录按 now 的时区取日期: UTC 存储的时间戳在东八区的午夜后
// 应当落进本地的次日桶
func TestDailyBucketsNormalizesLocation(t *testing.T) {
	cst := time.FixedZone("CST", 8*60*60)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, cst)

	// 2026-03-09 23:00 UTC == 2026-03-10 07:00 CST
	records := []time.Time{time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)}

	got := DailyBuckets(records, 2, now,
		func(r time.Time) time.Time { return r },
		func(r time.Time) int64 { return 1 })

	want := []DayBucket{
		{Date: "2026-03-09", Value: 0},
		{Date: "2026-03-10", Value: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DailyBuckets() = %v, want %v", got, want)
	}
}

func TestRollupForStudent(t *testing.T) {
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive, "S1", "S2"),
		cls("T1", consts.ClassStatusCompleted, "S1"),
		cls("T2", consts.ClassStatusInactive, "S1"),
		cls("T2", consts.ClassStatusActive, "S2"),
	}

	got := RollupForStudent(classes, "S1")
	want := EnrollmentRollup{Enrolled: 3, Active: 1, Completed: 1}
	if got != want {
		t.Errorf("RollupForStudent() = %+v, want %+v", got, want)
	}

	if got := RollupForStudent(classes, "nobody"); got != (EnrollmentRollup{}) {
		t.Errorf("unenrolled student should roll up to zero, got %+v", got)
	}
}

func TestRollupForTeacher(t *testing.T) {
	classes := []*class.Class{
		cls("T1", consts.ClassStatusActive, "S1", "S2"),
		cls("T1", consts.ClassStatusCompleted, "S3"),
		cls("T2", consts.ClassStatusActive, "S1"),
	}

	got := RollupForTeacher(classes, "T1")
	want := TeacherRollup{Classes: 2, Students: 3, Active: 1, Completed: 1}
	if got != want {
		t.Errorf("RollupForTeacher() = %+v, want %+v", got, want)
	}

	if got := RollupForTeacher(classes, "T3"); got != (TeacherRollup{}) {
		t.Errorf("teacher without classes should roll up to zero, got %+v", got)
	}
}

func TestDailyBucketsEmptyWindow(t *testing.T) {
	if got := DailyBuckets[int](nil, 0, time.Now(), nil, nil); len(got) != 0 {
		t.Errorf("zero days should yield no buckets, got %v", got)
	}
}
