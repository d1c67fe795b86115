package adaptor

import (
	"context"

	"classhub/biz/application/dto/basic"
	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/util"
	"classhub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/status"
)

// PostProcess 统一出口: 业务错误映射为 {code,msg}, 带 trace id 记日志
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	if !lo.Contains(config.GetConfig().Log.NoLogPaths, string(c.Path())) {
		traceID := trace.SpanContextFromContext(ctx).TraceID()
		log.CtxInfo(ctx, "[%s] trace=%s req=%s, resp=%s, err=%v",
			c.Path(), traceID, util.JSONF(req), util.JSONF(resp), err)
	}

	if err != nil {
		s, _ := status.FromError(err)
		c.JSON(consts.StatusOK, &basic.Response{
			Code: int64(s.Code()),
			Msg:  s.Message(),
		})
		return
	}
	c.JSON(consts.StatusOK, resp)
}
