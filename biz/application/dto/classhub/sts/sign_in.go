package sts

// SignInResp 统一身份认证返回的登录结果
type SignInResp struct {
	UserId  string  `json:"userId" mapstructure:"userId"`
	Email   string  `json:"email" mapstructure:"email"`
	Options *string `json:"options,omitempty" mapstructure:"options"`
}
