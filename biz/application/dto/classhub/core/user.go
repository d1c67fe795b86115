package core

type SignInReq struct {
	AuthType   string `json:"authType"`
	AuthId     string `json:"authId"`
	Password   string `json:"password,omitempty"`
	VerifyCode string `json:"verifyCode,omitempty"`
}

type SignInResp struct {
	Id           string `json:"id"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type UserProfileInfo struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Bio        string `json:"bio,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Grade      string `json:"grade,omitempty"`
	Department string `json:"department,omitempty"`
	AvatarUrl  string `json:"avatarUrl,omitempty"`
	CreateTime int64  `json:"createTime"`
}

type GetUserInfoReq struct {
}

type GetUserInfoResp struct {
	Code    int64            `json:"code"`
	Msg     string           `json:"msg"`
	Payload *UserProfileInfo `json:"payload,omitempty"`
}

// ListUsersReq 按角色列用户: 学生花名册或教师列表
type ListUsersReq struct {
	Role string `query:"role"`
}

// UserStatsInfo 列表行的课程汇总, 学生与教师共用,
// Classes/Students 只对教师有意义
type UserStatsInfo struct {
	Classes   int64 `json:"classes,omitempty"`
	Students  int64 `json:"students,omitempty"`
	Enrolled  int64 `json:"enrolled,omitempty"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type UserListItemInfo struct {
	User  *UserProfileInfo `json:"user"`
	Stats *UserStatsInfo   `json:"stats"`
}

type ListUsersResp struct {
	Code  int64               `json:"code"`
	Msg   string              `json:"msg"`
	Users []*UserListItemInfo `json:"users"`
	Total int64               `json:"total"`
}

// UpdateUserInfoReq 只能改自己的资料, role 不在可改范围内
type UpdateUserInfoReq struct {
	Name       *string `json:"name,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Location   *string `json:"location,omitempty"`
	Subject    *string `json:"subject,omitempty"`
	Grade      *string `json:"grade,omitempty"`
	Department *string `json:"department,omitempty"`
}

// UpdateAvatarReq 上传完成后回填头像地址与存储key
type UpdateAvatarReq struct {
	AvatarUrl string `json:"avatarUrl"`
	AvatarKey string `json:"avatarKey"`
}
