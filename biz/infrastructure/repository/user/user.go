package user

import (
	"time"

	"classhub/biz/infrastructure/consts"
)

// User 用户资料, _id 直接使用统一身份认证下发的 uid
type User struct {
	ID       string      `bson:"_id" json:"id"`
	Name     string      `bson:"name" json:"name"`
	Email    string      `bson:"email" json:"email"`
	Role     consts.Role `bson:"role" json:"role"`
	Bio      string      `bson:"bio,omitempty" json:"bio"`
	Phone    string      `bson:"phone,omitempty" json:"phone"`
	Location string      `bson:"location,omitempty" json:"location"`
	// 角色专属字段
	Subject    string `bson:"subject,omitempty" json:"subject"`       // teacher
	Grade      string `bson:"grade,omitempty" json:"grade"`           // student
	Department string `bson:"department,omitempty" json:"department"` // admin
	// AvatarURL 与 AvatarKey 成对维护, 替换头像时按 key 删除旧资源
	AvatarURL  string    `bson:"avatar_url,omitempty" json:"avatarUrl"`
	AvatarKey  string    `bson:"avatar_key,omitempty" json:"avatarKey"`
	CreateTime time.Time `bson:"create_time" json:"createTime"`
	UpdateTime time.Time `bson:"update_time" json:"updateTime"`
	LastActive time.Time `bson:"last_active,omitempty" json:"lastActive"`
}
