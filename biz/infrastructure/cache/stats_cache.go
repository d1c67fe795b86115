package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"classhub/biz/domain/scheduling"
	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const dashboardStatsCacheKey = "dashboard_stats"

type IStatsCacheMapper interface {
	Get(ctx context.Context) (*scheduling.DashboardStats, error)
	Set(ctx context.Context, data *scheduling.DashboardStats) error
	Delete(ctx context.Context) error
}

type StatsCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewStatsCacheMapper(config *config.Config) *StatsCacheMapper {
	return &StatsCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取仪表盘统计
func (m *StatsCacheMapper) Get(ctx context.Context) (*scheduling.DashboardStats, error) {
	cachedData, err := m.rds.GetCtx(ctx, dashboardStatsCacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result scheduling.DashboardStats
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将仪表盘统计存入缓存, 短过期换新鲜度
func (m *StatsCacheMapper) Set(ctx context.Context, data *scheduling.DashboardStats) error {
	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, dashboardStatsCacheKey, string(resultBytes), consts.DashboardStatsTTL)
}

// Delete 删除缓存
func (m *StatsCacheMapper) Delete(ctx context.Context) error {
	_, err := m.rds.DelCtx(ctx, dashboardStatsCacheKey)
	return err
}
