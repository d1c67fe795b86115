package util

import (
	"classhub/biz/application/dto/basic"
	"classhub/biz/infrastructure/consts"
)

func ParsePageOpt(p *basic.PaginationOptions) (skip int64, limit int64) {
	// 设置分页参数
	skip = int64(0)
	limit = int64(consts.NotificationPageSize)

	if p != nil && p.Page != nil && p.Limit != nil {
		skip = (*p.Page - 1) * *p.Limit
		limit = *p.Limit
	}
	return skip, limit
}
