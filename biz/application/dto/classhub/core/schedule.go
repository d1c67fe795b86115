package core

// GetScheduleReq 不传区间时取当前自然月
type GetScheduleReq struct {
	StartDate *int64 `query:"startDate,omitempty"`
	EndDate   *int64 `query:"endDate,omitempty"`
}

// ScheduleEvent 日历事件, 颜色由状态决定
type ScheduleEvent struct {
	Id     string     `json:"id"`
	Title  string     `json:"title"`
	Start  int64      `json:"start"`
	End    int64      `json:"end"`
	Color  string     `json:"color"`
	IsLive bool       `json:"isLive"`
	Class  *ClassInfo `json:"class"`
}

type GetScheduleResp struct {
	Code   int64            `json:"code"`
	Msg    string           `json:"msg"`
	Events []*ScheduleEvent `json:"events"`
	Total  int64            `json:"total"`
}
