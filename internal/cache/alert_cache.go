package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// AlertTTL 最新告警缓存的 TTL
// 前端 Dashboard 轮询间隔远小于该值，过期即回源数据库
const AlertTTL = 60 * time.Second

// AlertCache 最新告警缓存（用于 Dashboard 轮询，不作为数据源）
type AlertCache struct {
	kv     KVStore
	logger *zap.Logger
}

// NewAlertCache 创建告警缓存
func NewAlertCache(kv KVStore, logger *zap.Logger) *AlertCache {
	return &AlertCache{
		kv:     kv,
		logger: logger,
	}
}

func alertKey(userID int64) string {
	return fmt.Sprintf("inhaler:user:%d:alerts:latest", userID)
}

// UpdateLatestAlert 写入用户的最新告警
func (c *AlertCache) UpdateLatestAlert(ctx context.Context, alert *domain.Alert) error {
	key := alertKey(alert.UserID)

	jsonData, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	if err := c.kv.Set(ctx, key, string(jsonData), AlertTTL); err != nil {
		return fmt.Errorf("failed to set alert cache: %w", err)
	}

	c.logger.Debug("Updated latest alert cache",
		zap.Int64("user_id", alert.UserID),
		zap.String("key", key),
	)

	return nil
}

// GetLatestAlert 读取用户的最新告警（缓存不存在返回 ErrCacheMiss）
func (c *AlertCache) GetLatestAlert(ctx context.Context, userID int64) (*domain.Alert, error) {
	val, err := c.kv.Get(ctx, alertKey(userID))
	if err != nil {
		return nil, err
	}

	var alert domain.Alert
	if err := json.Unmarshal([]byte(val), &alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached alert: %w", err)
	}

	return &alert, nil
}
