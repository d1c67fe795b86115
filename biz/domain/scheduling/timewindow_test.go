package scheduling

import (
	"testing"
	"time"
)

var base = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestIsValidWindow(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "end after start", start: at(10, 0), end: at(11, 0), want: true},
		{name: "end before start", start: at(11, 0), end: at(10, 0), want: false},
		{name: "equal", start: at(10, 0), end: at(10, 0), want: false},
		{name: "zero start", start: time.Time{}, end: at(11, 0), want: false},
		{name: "zero end", start: at(10, 0), end: time.Time{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidWindow(tt.start, tt.end); got != tt.want {
				t.Errorf("IsValidWindow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotInPast(t *testing.T) {
	if NotInPast(base.Add(-time.Minute), base) {
		t.Error("instant before now should be in the past")
	}
	if !NotInPast(base, base) {
		t.Error("instant equal to now should not be in the past")
	}
	if !NotInPast(base.Add(time.Minute), base) {
		t.Error("future instant should not be in the past")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{name: "disjoint", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(12, 0), bEnd: at(13, 0), want: false},
		{name: "touching is not overlap", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(11, 0), bEnd: at(12, 0), want: false},
		{name: "partial", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 30), bEnd: at(12, 0), want: true},
		{name: "contained", aStart: at(10, 0), aEnd: at(13, 0), bStart: at(11, 0), bEnd: at(12, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

// IsLive 是闭区间: 起止时刻本身都算在上课中
func TestIsLiveClosedBoundaries(t *testing.T) {
	start, end := at(10, 0), at(11, 0)

	if !IsLive(start, end, start) {
		t.Error("class should be live at its exact start instant")
	}
	if !IsLive(start, end, end) {
		t.Error("class should be live at its exact end instant")
	}
	if IsLive(start, end, start.Add(-time.Second)) {
		t.Error("class should not be live before start")
	}
	if IsLive(start, end, end.Add(time.Second)) {
		t.Error("class should not be live after end")
	}
}

func TestDefaultEndFor(t *testing.T) {
	if got := DefaultEndFor(base); !got.Equal(base.Add(time.Hour)) {
		t.Errorf("DefaultEndFor() = %v, want start+1h", got)
	}
}
