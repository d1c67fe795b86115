package core

type DashboardStatsInfo struct {
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

type GetDashboardStatsReq struct {
}

type GetDashboardStatsResp struct {
	Code  int64               `json:"code"`
	Msg   string              `json:"msg"`
	Stats *DashboardStatsInfo `json:"stats"`
}

type StatusCountInfo struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TeacherRankInfo struct {
	TeacherId string `json:"teacherId"`
	Name      string `json:"name"`
	Classes   int64  `json:"classes"`
	Students  int64  `json:"students"`
}

type DepartmentStatInfo struct {
	Department string `json:"department"`
	Teachers   int64  `json:"teachers"`
	Classes    int64  `json:"classes"`
}

type TrendPointInfo struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type GetAnalyticsReq struct {
	Days *int64 `query:"days,omitempty"` // 趋势窗口, 默认30天
}

type GetAnalyticsResp struct {
	Code                    int64                 `json:"code"`
	Msg                     string                `json:"msg"`
	Stats                   *DashboardStatsInfo   `json:"stats"`
	ClassStatusDistribution []*StatusCountInfo    `json:"classStatusDistribution"`
	TopTeachers             []*TeacherRankInfo    `json:"topTeachers"`
	DepartmentStats         []*DepartmentStatInfo `json:"departmentStats"`
	UserGrowth              []*TrendPointInfo     `json:"userGrowth"`
	EnrollmentTrend         []*TrendPointInfo     `json:"enrollmentTrend"`
}
