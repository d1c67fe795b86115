package core

// TeacherSnapshotInfo 创建时刻的教师快照
type TeacherSnapshotInfo struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

type ClassInfo struct {
	Id               string              `json:"id"`
	Title            string              `json:"title"`
	TeacherId        string              `json:"teacherId"`
	TeacherInfo      TeacherSnapshotInfo `json:"teacherInfo"`
	StartTime        int64               `json:"startTime"`
	EndTime          int64               `json:"endTime"`
	MaxStudents      int64               `json:"maxStudents"`
	MeetingLink      string              `json:"meetingLink"`
	Status           string              `json:"status"`
	Duration         string              `json:"duration"`
	Subject          string              `json:"subject,omitempty"`
	Description      string              `json:"description,omitempty"`
	EnrolledStudents []string            `json:"enrolledStudents"`
	EnrolledCount    int64               `json:"enrolledCount"`
	IsLive           bool                `json:"isLive"`
	CreateTime       int64               `json:"createTime"`
}

type CreateClassReq struct {
	Title       string  `json:"title"`
	StartTime   int64   `json:"startTime"`
	EndTime     int64   `json:"endTime"`
	MaxStudents *int64  `json:"maxStudents,omitempty"`
	MeetingLink string  `json:"meetingLink"`
	Status      *string `json:"status,omitempty"`
	Duration    string  `json:"duration"`
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateClassResp struct {
	Code    int64      `json:"code"`
	Msg     string     `json:"msg"`
	ClassId string     `json:"classId"`
	Class   *ClassInfo `json:"class,omitempty"`
}

type UpdateClassReq struct {
	ClassId     string  `json:"classId"`
	Title       *string `json:"title,omitempty"`
	StartTime   *int64  `json:"startTime,omitempty"`
	EndTime     *int64  `json:"endTime,omitempty"`
	MaxStudents *int64  `json:"maxStudents,omitempty"`
	MeetingLink *string `json:"meetingLink,omitempty"`
	Status      *string `json:"status,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeleteClassReq struct {
	ClassId string `json:"classId"`
}

type GetClassReq struct {
	ClassId string `query:"classId"`
}

type GetClassResp struct {
	Code           int64      `json:"code"`
	Msg            string     `json:"msg"`
	Class          *ClassInfo `json:"class"`
	IsEnrolled     bool       `json:"isEnrolled"`
	CanJoinMeeting bool       `json:"canJoinMeeting"`
}

// ListClassesReq enrollment 仅对学生生效: enrolled/available/all
type ListClassesReq struct {
	SearchTerm *string `query:"searchTerm,omitempty"`
	Status     *string `query:"status,omitempty"`
	Enrollment *string `query:"enrollment,omitempty"`
}

type ListClassesResp struct {
	Code    int64        `json:"code"`
	Msg     string       `json:"msg"`
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type EnrollReq struct {
	ClassId string `json:"classId"`
}

type UnenrollReq struct {
	ClassId string `json:"classId"`
}
