package domain

// InhalerUsage 吸入器使用计数（对应 inhaler_usage 表）
// 每个用户至多一行，首次使用时以 usage_count=1 创建
type InhalerUsage struct {
	UsageID    int64 `db:"usage_id"`
	UserID     int64 `db:"user_id"` // FK users, UNIQUE
	UsageCount int64 `db:"usage_count"`
}
