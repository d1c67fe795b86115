package util

import (
	"encoding/json"

	"classhub/biz/application/dto/basic"
)

// JSONF 日志用的序列化, 失败时返回空串
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
