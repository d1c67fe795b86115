package main

import (
	"context"

	"classhub/biz/adaptor"
	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/util/log"
	"classhub/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func Init() {
	provider.Init()
	otel.SetTextMapPropagator(b3.New())
}

func main() {
	Init()

	c := config.GetConfig()
	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	// 业务层通过 ctx 取 RequestContext 解析用户
	h.Use(func(ctx context.Context, rc *app.RequestContext) {
		rc.Next(adaptor.InjectContext(ctx, rc))
	})

	register(h)

	log.Info("服务启动, 监听 %s", c.ListenOn)
	h.Spin()
}

func register(r *server.Hertz) {
	customizedRegister(r)
}
