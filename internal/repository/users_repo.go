package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// UsersRepository 用户仓库
type UsersRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUsersRepository 创建用户仓库
func NewUsersRepository(db *sql.DB, logger *zap.Logger) *UsersRepository {
	return &UsersRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertByPhone 按手机号保存用户档案
// phone 唯一：已存在则整体覆盖可变字段，不存在则新建，返回 user_id
func (r *UsersRepository) UpsertByPhone(ctx context.Context, user *domain.User) (int64, error) {
	query := `
		INSERT INTO users (
			name,
			age,
			gender,
			phone,
			medical_history,
			emergency_contact_name,
			emergency_contact_phone
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (phone)
		DO UPDATE SET name = EXCLUDED.name,
		              age = EXCLUDED.age,
		              gender = EXCLUDED.gender,
		              medical_history = EXCLUDED.medical_history,
		              emergency_contact_name = EXCLUDED.emergency_contact_name,
		              emergency_contact_phone = EXCLUDED.emergency_contact_phone
		RETURNING user_id
	`

	var userID int64
	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Age,
		user.Gender,
		user.Phone,
		user.MedicalHistory,
		user.EmergencyContactName,
		user.EmergencyContactPhone,
	).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert user: %w", err)
	}

	return userID, nil
}

// GetUser 根据 user_id 获取用户
func (r *UsersRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT
			user_id,
			name,
			age,
			gender,
			phone,
			medical_history,
			emergency_contact_name,
			emergency_contact_phone
		FROM users
		WHERE user_id = $1
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Age,
		&user.Gender,
		&user.Phone,
		&user.MedicalHistory,
		&user.EmergencyContactName,
		&user.EmergencyContactPhone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
