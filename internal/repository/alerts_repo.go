package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// AlertsRepository 告警仓库
type AlertsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAlertsRepository 创建告警仓库
func NewAlertsRepository(db *sql.DB, logger *zap.Logger) *AlertsRepository {
	return &AlertsRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAlert 追加一条告警
func (r *AlertsRepository) CreateAlert(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (alert_id, user_id, message, timestamp)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		alert.AlertID,
		alert.UserID,
		alert.Message,
		alert.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}

	return nil
}

// ListAlerts 获取用户全部告警（按时间顺序）
func (r *AlertsRepository) ListAlerts(ctx context.Context, userID int64) ([]domain.Alert, error) {
	query := `
		SELECT alert_id, user_id, message, timestamp
		FROM alerts
		WHERE user_id = $1
		ORDER BY timestamp, alert_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var alert domain.Alert
		if err := rows.Scan(&alert.AlertID, &alert.UserID, &alert.Message, &alert.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alerts: %w", err)
	}

	return alerts, nil
}
