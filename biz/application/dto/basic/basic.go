package basic

// UserMeta 从网关JWT中解出的当前用户
type UserMeta struct {
	UserId string `json:"userId"`
	Role   string `json:"role"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty"`
	Limit *int64 `json:"limit,omitempty"`
}

type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}
