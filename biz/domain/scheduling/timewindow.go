// Package scheduling 是课程排期与选课的纯函数核心.
// 所有函数不做任何 I/O, 读写数据库由上层 service 负责.
package scheduling

import "time"

// IsValidWindow 时间窗是否合法: 两端均非零且结束晚于开始
func IsValidWindow(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return end.After(start)
}

// NotInPast t 不早于 now
func NotInPast(t, now time.Time) bool {
	return !t.Before(now)
}

// Overlaps 半开区间 [aStart,aEnd) 与 [bStart,bEnd) 是否重叠,
// 预留给后续的排课冲突检测
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsLive 课程此刻是否在上课中.
// 闭区间 now ∈ [start,end], 与前端 "Live Now" 的判定保持一致, 勿改成半开区间
func IsLive(start, end, now time.Time) bool {
	return !now.Before(start) && !now.After(end)
}

// DefaultEndFor 开始时间变动导致结束时间失效时的默认结束时间
func DefaultEndFor(start time.Time) time.Time {
	return start.Add(time.Hour)
}
