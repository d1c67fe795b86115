package scheduling

import (
	"errors"
	"testing"
	"time"

	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
)

func validCandidate(now time.Time) *class.Class {
	return &class.Class{
		Title:       "Advanced Mathematics",
		TeacherID:   "T1",
		StartTime:   now.Add(time.Hour),
		EndTime:     now.Add(2 * time.Hour),
		MaxStudents: 30,
		MeetingLink: "https://meet.google.com/abc-defg-hij",
		Duration:    "1 hour",
	}
}

func TestValidateForCreate(t *testing.T) {
	now := base

	tests := []struct {
		name    string
		mutate  func(c *class.Class)
		wantErr error
	}{
		{name: "valid", mutate: func(c *class.Class) {}},
		{name: "empty title", mutate: func(c *class.Class) { c.Title = "  " }, wantErr: consts.ErrEmptyTitle},
		{name: "start in past", mutate: func(c *class.Class) { c.StartTime = now.Add(-time.Minute) }, wantErr: consts.ErrStartInPast},
		{name: "end in past", mutate: func(c *class.Class) {
			c.StartTime = now.Add(time.Hour)
			c.EndTime = now.Add(-time.Minute)
		}, wantErr: consts.ErrEndInPast},
		{name: "end before start", mutate: func(c *class.Class) {
			c.StartTime = now.Add(2 * time.Hour)
			c.EndTime = now.Add(time.Hour)
		}, wantErr: consts.ErrEndBeforeStart},
		{name: "end equals start", mutate: func(c *class.Class) {
			c.StartTime = now.Add(time.Hour)
			c.EndTime = now.Add(time.Hour)
		}, wantErr: consts.ErrEndBeforeStart},
		{name: "zero capacity", mutate: func(c *class.Class) { c.MaxStudents = 0 }, wantErr: consts.ErrInvalidCapacity},
		{name: "bad meeting link", mutate: func(c *class.Class) { c.MeetingLink = "not a url" }, wantErr: consts.ErrInvalidMeetingLink},
		{name: "relative meeting link", mutate: func(c *class.Class) { c.MeetingLink = "/meet/abc" }, wantErr: consts.ErrInvalidMeetingLink},
		{name: "unknown status", mutate: func(c *class.Class) { c.Status = "archived" }, wantErr: consts.ErrInvalidStatus},
		{name: "explicit completed status", mutate: func(c *class.Class) { c.Status = consts.ClassStatusCompleted }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate(now)
			tt.mutate(c)
			if err := ValidateForCreate(c, now); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForCreate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// 校验顺序是固定的: 空标题优先于时间错误
func TestValidateForCreateFailFastOrder(t *testing.T) {
	now := base
	c := validCandidate(now)
	c.Title = ""
	c.StartTime = now.Add(-time.Hour)

	if err := ValidateForCreate(c, now); err != consts.ErrEmptyTitle {
		t.Errorf("expected title check to run first, got %v", err)
	}
}

func TestValidateForCreateNormalizes(t *testing.T) {
	now := base
	c := validCandidate(now)
	c.EnrolledStudents = []string{"stale"}

	if err := ValidateForCreate(c, now); err != nil {
		t.Fatalf("ValidateForCreate() error = %v", err)
	}
	if len(c.EnrolledStudents) != 0 {
		t.Error("roster should be reset on create")
	}
	if c.Status != consts.ClassStatusActive {
		t.Errorf("status should default to active, got %q", c.Status)
	}

	c2 := validCandidate(now)
	c2.Status = consts.ClassStatusInactive
	if err := ValidateForCreate(c2, now); err != nil {
		t.Fatalf("ValidateForCreate() error = %v", err)
	}
	if c2.Status != consts.ClassStatusInactive {
		t.Error("explicit status should be kept")
	}
}

func TestValidateForUpdate(t *testing.T) {
	now := base
	existing := validCandidate(now)
	existing.EnrolledStudents = []string{"S1", "S2"}

	title := "Linear Algebra"
	capacity := int64(10)
	status := consts.ClassStatusCompleted

	next, err := ValidateForUpdate(existing, &ClassPatch{
		Title:       &title,
		MaxStudents: &capacity,
		Status:      &status,
	})
	if err != nil {
		t.Fatalf("ValidateForUpdate() error = %v", err)
	}
	if next.Title != title || next.MaxStudents != capacity || next.Status != status {
		t.Error("patched fields not applied")
	}
	if next.TeacherID != existing.TeacherID {
		t.Error("teacher_id must not change through update")
	}
	if len(next.EnrolledStudents) != 2 {
		t.Error("roster must not change through update")
	}
	if existing.Title != "Advanced Mathematics" {
		t.Error("existing record must not be mutated")
	}
}

func TestValidateForUpdateRejectsBadPatch(t *testing.T) {
	now := base
	existing := validCandidate(now)

	badStart := existing.EndTime.Add(time.Hour)
	if _, err := ValidateForUpdate(existing, &ClassPatch{StartTime: &badStart}); err != consts.ErrEndBeforeStart {
		t.Errorf("expected ErrEndBeforeStart, got %v", err)
	}

	empty := ""
	if _, err := ValidateForUpdate(existing, &ClassPatch{Title: &empty}); err != consts.ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	zero := int64(0)
	if _, err := ValidateForUpdate(existing, &ClassPatch{MaxStudents: &zero}); err != consts.ErrInvalidCapacity {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}

	bad := "://nope"
	if _, err := ValidateForUpdate(existing, &ClassPatch{MeetingLink: &bad}); err != consts.ErrInvalidMeetingLink {
		t.Errorf("expected ErrInvalidMeetingLink, got %v", err)
	}

	archived := "archived"
	if _, err := ValidateForUpdate(existing, &ClassPatch{Status: &archived}); err != consts.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

// completed 不是终态, 可以改回 active
func TestCompletedIsNotTerminal(t *testing.T) {
	now := base
	existing := validCandidate(now)
	existing.Status = consts.ClassStatusCompleted

	active := consts.ClassStatusActive
	next, err := ValidateForUpdate(existing, &ClassPatch{Status: &active})
	if err != nil {
		t.Fatalf("ValidateForUpdate() error = %v", err)
	}
	if next.Status != consts.ClassStatusActive {
		t.Error("completed class should be editable back to active")
	}
}
