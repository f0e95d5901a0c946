package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// InhalerUsageRepository 吸入器使用计数仓库
type InhalerUsageRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInhalerUsageRepository 创建吸入器使用计数仓库
func NewInhalerUsageRepository(db *sql.DB, logger *zap.Logger) *InhalerUsageRepository {
	return &InhalerUsageRepository{
		db:     db,
		logger: logger,
	}
}

// IncrementUsage 使用事件计数 +1，返回最新计数
// 单条 upsert 语句保证并发自增不丢失更新：首次使用创建计数行（usage_count=1）
func (r *InhalerUsageRepository) IncrementUsage(ctx context.Context, userID int64) (int64, error) {
	query := `
		INSERT INTO inhaler_usage (user_id, usage_count)
		VALUES ($1, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET usage_count = inhaler_usage.usage_count + 1
		RETURNING usage_count
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to increment inhaler usage: %w", err)
	}

	return count, nil
}

// GetUsage 获取用户当前使用计数
func (r *InhalerUsageRepository) GetUsage(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT usage_count
		FROM inhaler_usage
		WHERE user_id = $1
	`

	var count int64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("%w: no inhaler usage for user %d", ErrNotFound, userID)
		}
		return 0, fmt.Errorf("failed to query inhaler usage: %w", err)
	}

	return count, nil
}
