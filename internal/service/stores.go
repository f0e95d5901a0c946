package service

import (
	"context"

	"inhaler-monitor/internal/domain"
)

// 按实体拆分的存储抽象，Service 层只依赖接口
// *repository.XxxRepository 为 Postgres 实现，测试中以内存 fake 替换

// UserStore 用户存储
type UserStore interface {
	UpsertByPhone(ctx context.Context, user *domain.User) (int64, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// SensorStore 传感器读数存储
type SensorStore interface {
	CreateReading(ctx context.Context, reading *domain.SensorReading) error
	ListReadings(ctx context.Context, userID int64) ([]domain.SensorReading, error)
	LatestReading(ctx context.Context, userID int64) (*domain.SensorReading, error)
}

// QuizStore 问卷回答存储
type QuizStore interface {
	CreateResponses(ctx context.Context, responses []domain.QuizResponse) error
	ListResponses(ctx context.Context, userID int64) ([]domain.QuizResponse, error)
	LatestAnswers(ctx context.Context, userID int64) (map[string]string, error)
}

// UsageStore 吸入器使用计数存储
type UsageStore interface {
	IncrementUsage(ctx context.Context, userID int64) (int64, error)
	GetUsage(ctx context.Context, userID int64) (int64, error)
}

// AlertStore 告警存储
type AlertStore interface {
	CreateAlert(ctx context.Context, alert *domain.Alert) error
	ListAlerts(ctx context.Context, userID int64) ([]domain.Alert, error)
}
