package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherSnapshot 创建课程时对教师信息的一次性拷贝, 不随教师资料更新
type TeacherSnapshot struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Subject string `bson:"subject" json:"subject"`
}

type Class struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	TeacherInfo TeacherSnapshot    `bson:"teacher_info" json:"teacherInfo"`
	StartTime   time.Time          `bson:"start_time" json:"startTime"`
	EndTime     time.Time          `bson:"end_time" json:"endTime"`
	MaxStudents int64              `bson:"max_students" json:"maxStudents"`
	MeetingLink string             `bson:"meeting_link" json:"meetingLink"`
	Status      string             `bson:"status" json:"status"` // active/inactive/completed
	// Duration 是自由文本, 与 start/end 各自独立维护
	Duration         string    `bson:"duration" json:"duration"`
	Subject          string    `bson:"subject,omitempty" json:"subject"`
	Description      string    `bson:"description,omitempty" json:"description"`
	EnrolledStudents []string  `bson:"enrolled_students" json:"enrolledStudents"`
	CreateTime       time.Time `bson:"create_time" json:"createTime"`
	UpdateTime       time.Time `bson:"update_time" json:"updateTime"`
}
