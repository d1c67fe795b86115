package scheduling

import (
	"reflect"
	"testing"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
)

func named(title, teacherID, teacherName, subject, status string) *class.Class {
	return &class.Class{
		Title:     title,
		TeacherID: teacherID,
		TeacherInfo: class.TeacherSnapshot{
			ID:   teacherID,
			Name: teacherName,
		},
		Subject:          subject,
		Status:           status,
		EnrolledStudents: []string{},
	}
}

// 教师视角精确返回自己的课程, 保持输入顺序
func TestByTeacher(t *testing.T) {
	classes := []*class.Class{
		named("C1", "T1", "Ann", "", consts.ClassStatusActive),
		named("C2", "T2", "Bob", "", consts.ClassStatusActive),
		named("C3", "T1", "Ann", "", consts.ClassStatusInactive),
		named("C4", "T3", "Cid", "", consts.ClassStatusActive),
		named("C5", "T2", "Bob", "", consts.ClassStatusActive),
	}

	got := ByTeacher(classes, "T1")
	if len(got) != 2 || got[0].Title != "C1" || got[1].Title != "C3" {
		t.Errorf("ByTeacher() = %v, want [C1 C3] in input order", titles(got))
	}
}

func TestEnrolledByAndActiveOnly(t *testing.T) {
	c1 := named("C1", "T1", "Ann", "", consts.ClassStatusActive)
	c1.EnrolledStudents = []string{"S1"}
	c2 := named("C2", "T1", "Ann", "", consts.ClassStatusInactive)
	c2.EnrolledStudents = []string{"S1", "S2"}
	c3 := named("C3", "T2", "Bob", "", consts.ClassStatusActive)
	classes := []*class.Class{c1, c2, c3}

	// 已报名视图与发现页是两个独立查询
	if got := titles(EnrolledBy(classes, "S1")); !reflect.DeepEqual(got, []string{"C1", "C2"}) {
		t.Errorf("EnrolledBy() = %v", got)
	}
	if got := titles(ActiveOnly(classes)); !reflect.DeepEqual(got, []string{"C1", "C3"}) {
		t.Errorf("ActiveOnly() = %v", got)
	}
}

func TestWithinRangeInclusive(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	mk := func(title string, start time.Time) *class.Class {
		c := named(title, "T1", "Ann", "", consts.ClassStatusActive)
		c.StartTime = start
		return c
	}
	classes := []*class.Class{
		mk("before", from.Add(-time.Second)),
		mk("on-from", from),
		mk("inside", from.AddDate(0, 0, 10)),
		mk("on-to", to),
		mk("after", to.Add(time.Second)),
	}

	got := titles(WithinRange(classes, from, to))
	if !reflect.DeepEqual(got, []string{"on-from", "inside", "on-to"}) {
		t.Errorf("WithinRange() = %v, want inclusive bounds", got)
	}
}

func TestSearch(t *testing.T) {
	classes := []*class.Class{
		named("Advanced Mathematics", "T1", "Ann Lee", "math", consts.ClassStatusActive),
		named("Intro Biology", "T2", "Bob Ray", "science", consts.ClassStatusActive),
		named("Art History", "T3", "Cid Mathers", "arts", consts.ClassStatusActive),
	}

	tests := []struct {
		term string
		want []string
	}{
		{term: "math", want: []string{"Advanced Mathematics", "Art History"}}, // 标题或教师名
		{term: "BOB", want: []string{"Intro Biology"}},
		{term: "science", want: []string{"Intro Biology"}},
		{term: "", want: []string{"Advanced Mathematics", "Intro Biology", "Art History"}},
		{term: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := titles(Search(classes, tt.term)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestByStatus(t *testing.T) {
	classes := []*class.Class{
		named("C1", "T1", "Ann", "", consts.ClassStatusActive),
		named("C2", "T1", "Ann", "", consts.ClassStatusCompleted),
	}

	if got := ByStatus(classes, "all"); len(got) != 2 {
		t.Errorf(`ByStatus("all") should not filter, got %v`, titles(got))
	}
	if got := ByStatus(classes, consts.ClassStatusCompleted); len(got) != 1 || got[0].Title != "C2" {
		t.Errorf("ByStatus(completed) = %v", titles(got))
	}
}

func titles(classes []*class.Class) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		out = append(out, c.Title)
	}
	return out
}
