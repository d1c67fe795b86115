package provider

import (
	"classhub/biz/application/service"
	"classhub/biz/infrastructure/cache"
	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/notification"
	"classhub/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	UserService         service.UserService
	ClassService        service.ClassService
	ScheduleService     service.ScheduleService
	AnalyticsService    service.AnalyticsService
	NotificationService service.NotificationService
	StsService          service.StsService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.ScheduleServiceSet,
	service.AnalyticsServiceSet,
	service.NotificationServiceSet,
	service.StsServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	class.NewMongoMapper,
	notification.NewMongoMapper,
	cache.NewStatsCacheMapper,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
