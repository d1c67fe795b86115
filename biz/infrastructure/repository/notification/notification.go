package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"userId"`
	Title   string             `bson:"title" json:"title"`
	Message string             `bson:"message" json:"message"`
	Type    string             `bson:"type" json:"type"`
	Read    bool               `bson:"read" json:"read"`
	// 可选的发送方信息
	SenderID   string    `bson:"sender_id,omitempty" json:"senderId"`
	SenderName string    `bson:"sender_name,omitempty" json:"senderName"`
	SenderRole string    `bson:"sender_role,omitempty" json:"senderRole"`
	ClassID    string    `bson:"class_id,omitempty" json:"classId"`
	ActionURL  string    `bson:"action_url,omitempty" json:"actionUrl"`
	CreateTime time.Time `bson:"create_time" json:"createTime"`
}
