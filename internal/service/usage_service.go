package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// UsageService 吸入器使用计数服务接口
type UsageService interface {
	RecordUsage(ctx context.Context, userID int64) (*UsageDTO, error)
	GetUsage(ctx context.Context, userID int64) (*UsageDTO, error)
}

// UsageDTO 使用计数
type UsageDTO struct {
	UserID     int64 `json:"user_id"`
	UsageCount int64 `json:"usage_count"`
}

// usageService 实现
type usageService struct {
	usage  UsageStore
	logger *zap.Logger
}

// NewUsageService 创建 UsageService 实例
func NewUsageService(usage UsageStore, logger *zap.Logger) UsageService {
	return &usageService{
		usage:  usage,
		logger: logger,
	}
}

// RecordUsage 记录一次吸入器使用，返回最新计数
// 计数自增由仓库层单条 upsert 保证原子性（并发使用事件不丢失）
func (s *usageService) RecordUsage(ctx context.Context, userID int64) (*UsageDTO, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	count, err := s.usage.IncrementUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inhaler usage recorded",
		zap.Int64("user_id", userID),
		zap.Int64("usage_count", count),
	)

	return &UsageDTO{UserID: userID, UsageCount: count}, nil
}

// GetUsage 获取用户当前使用计数
func (s *usageService) GetUsage(ctx context.Context, userID int64) (*UsageDTO, error) {
	count, err := s.usage.GetUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UsageDTO{UserID: userID, UsageCount: count}, nil
}
