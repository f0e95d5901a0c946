package domain

import "time"

// Alert 风险告警（对应 alerts 表）
// 只追加，message 内嵌模型返回的风险分数
type Alert struct {
	AlertID   string    `db:"alert_id"` // uuid
	UserID    int64     `db:"user_id"`  // FK users
	Message   string    `db:"message"`
	Timestamp time.Time `db:"timestamp"`
}
