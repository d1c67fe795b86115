package scheduling

import (
	"fmt"
	"reflect"
	"testing"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
)

func activeClass(max int64, roster ...string) *class.Class {
	if roster == nil {
		roster = []string{}
	}
	return &class.Class{
		Title:            "Physics 101",
		TeacherID:        "T1",
		MaxStudents:      max,
		Status:           consts.ClassStatusActive,
		EnrolledStudents: roster,
	}
}

func TestCanEnroll(t *testing.T) {
	tests := []struct {
		name    string
		c       *class.Class
		student string
		want    bool
	}{
		{name: "open class", c: activeClass(2), student: "S1", want: true},
		{name: "already enrolled", c: activeClass(2, "S1"), student: "S1", want: false},
		{name: "full", c: activeClass(2, "S1", "S2"), student: "S3", want: false},
		{name: "inactive", c: &class.Class{Status: consts.ClassStatusInactive, MaxStudents: 2}, student: "S1", want: false},
		{name: "completed", c: &class.Class{Status: consts.ClassStatusCompleted, MaxStudents: 2}, student: "S1", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEnroll(tt.c, tt.student); got != tt.want {
				t.Errorf("CanEnroll() = %v, want %v", got, tt.want)
			}
		})
	}
}

// 顺序报名永远不会超出容量, 第 N+1 个人收到 ErrClassFull
func TestEnrollCapacityInvariant(t *testing.T) {
	const max = 5
	c := activeClass(max)

	for i := 0; i < max; i++ {
		next, err := Enroll(c, fmt.Sprintf("S%d", i))
		if err != nil {
			t.Fatalf("enroll %d failed: %v", i, err)
		}
		if int64(len(next.EnrolledStudents)) > max {
			t.Fatalf("roster exceeded capacity: %d", len(next.EnrolledStudents))
		}
		c = next
	}

	if _, err := Enroll(c, "S5"); err != consts.ErrClassFull {
		t.Errorf("expected ErrClassFull, got %v", err)
	}
	if len(c.EnrolledStudents) != max {
		t.Errorf("roster size = %d, want %d", len(c.EnrolledStudents), max)
	}
}

// 重复报名被拒绝且名单不变
func TestEnrollDuplicateRejected(t *testing.T) {
	c := activeClass(10)

	first, err := Enroll(c, "S1")
	if err != nil {
		t.Fatalf("first enroll failed: %v", err)
	}

	_, err = Enroll(first, "S1")
	if err != consts.ErrAlreadyEnrolled {
		t.Errorf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if !reflect.DeepEqual(first.EnrolledStudents, []string{"S1"}) {
		t.Errorf("roster changed by rejected enroll: %v", first.EnrolledStudents)
	}
}

func TestEnrollInactiveClass(t *testing.T) {
	c := activeClass(10)
	c.Status = consts.ClassStatusInactive

	if _, err := Enroll(c, "S1"); err != consts.ErrClassNotActive {
		t.Errorf("expected ErrClassNotActive, got %v", err)
	}
}

// 报名后退课应回到原始名单, 其余字段不动
func TestEnrollUnenrollRoundTrip(t *testing.T) {
	c := activeClass(3, "S1")

	enrolled, err := Enroll(c, "S2")
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	back, err := Unenroll(enrolled, "S2")
	if err != nil {
		t.Fatalf("unenroll failed: %v", err)
	}

	if !reflect.DeepEqual(back.EnrolledStudents, c.EnrolledStudents) {
		t.Errorf("roster after round trip = %v, want %v", back.EnrolledStudents, c.EnrolledStudents)
	}
	if back.Title != c.Title || back.TeacherID != c.TeacherID || back.MaxStudents != c.MaxStudents {
		t.Error("round trip touched non-roster fields")
	}
}

func TestUnenroll(t *testing.T) {
	c := activeClass(5, "S1", "S2", "S3")

	next, err := Unenroll(c, "S2")
	if err != nil {
		t.Fatalf("unenroll failed: %v", err)
	}
	if !reflect.DeepEqual(next.EnrolledStudents, []string{"S1", "S3"}) {
		t.Errorf("roster = %v, want order preserved without S2", next.EnrolledStudents)
	}

	if _, err = Unenroll(c, "S9"); err != consts.ErrNotEnrolled {
		t.Errorf("expected ErrNotEnrolled, got %v", err)
	}

	// 退课不受状态限制
	done := activeClass(5, "S1")
	done.Status = consts.ClassStatusCompleted
	if !CanUnenroll(done, "S1") {
		t.Error("unenroll should be allowed regardless of class status")
	}
}

// 入参记录绝不被原地修改
func TestEnrollDoesNotMutateInput(t *testing.T) {
	c := activeClass(5, "S1")

	if _, err := Enroll(c, "S2"); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if !reflect.DeepEqual(c.EnrolledStudents, []string{"S1"}) {
		t.Errorf("input roster mutated: %v", c.EnrolledStudents)
	}
}

func TestCanEditCanDelete(t *testing.T) {
	c := activeClass(5)
	c.TeacherID = "U1"

	tests := []struct {
		name      string
		userID    string
		role      consts.Role
		canEdit   bool
		canDelete bool
	}{
		{name: "owning teacher", userID: "U1", role: consts.RoleTeacher, canEdit: true, canDelete: true},
		{name: "other teacher", userID: "U2", role: consts.RoleTeacher, canEdit: false, canDelete: false},
		{name: "admin", userID: "U2", role: consts.RoleAdmin, canEdit: false, canDelete: true},
		{name: "student", userID: "U1", role: consts.RoleStudent, canEdit: false, canDelete: false},
		{name: "unknown role fails closed", userID: "U1", role: consts.Role("root"), canEdit: false, canDelete: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(c, tt.userID, tt.role); got != tt.canEdit {
				t.Errorf("CanEdit() = %v, want %v", got, tt.canEdit)
			}
			if got := CanDelete(c, tt.userID, tt.role); got != tt.canDelete {
				t.Errorf("CanDelete() = %v, want %v", got, tt.canDelete)
			}
		})
	}
}

func TestCanJoinMeeting(t *testing.T) {
	c := activeClass(5, "S1")

	if !CanJoinMeeting(c, "T1", consts.RoleTeacher, false) {
		t.Error("teacher should always join")
	}
	if !CanJoinMeeting(c, "A1", consts.RoleAdmin, false) {
		t.Error("admin should always join")
	}
	if !CanJoinMeeting(c, "S1", consts.RoleStudent, true) {
		t.Error("enrolled student should join")
	}
	if CanJoinMeeting(c, "S2", consts.RoleStudent, false) {
		t.Error("unenrolled student should not join")
	}
}
