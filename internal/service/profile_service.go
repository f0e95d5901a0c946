package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// ProfileService 用户档案服务接口
type ProfileService interface {
	SaveProfile(ctx context.Context, req SaveProfileRequest) (*SaveProfileResponse, error)
	GetProfile(ctx context.Context, userID int64) (*ProfileDTO, error)
}

// EmergencyContact 紧急联系人
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SaveProfileRequest 保存档案请求（字段与前端 Profile 页面对齐）
type SaveProfileRequest struct {
	Name              string             `json:"name"`
	Age               int                `json:"age"`
	Gender            string             `json:"gender"`
	Mobile            string             `json:"mobile"`
	MedicalHistory    string             `json:"medicalHistory"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

// SaveProfileResponse 保存档案响应
type SaveProfileResponse struct {
	UserID int64 `json:"user_id"`
}

// ProfileDTO 用户档案
type ProfileDTO struct {
	UserID                int64  `json:"id"`
	Name                  string `json:"name"`
	Age                   int    `json:"age"`
	Gender                string `json:"gender"`
	Phone                 string `json:"phone_no"`
	MedicalHistory        string `json:"medical_history"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// profileService 实现
type profileService struct {
	users  UserStore
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(users UserStore, logger *zap.Logger) ProfileService {
	return &profileService{
		users:  users,
		logger: logger,
	}
}

// SaveProfile 按手机号 upsert 用户档案
// 手机号相同则覆盖已有记录的全部可变字段，不会产生重复用户
func (s *profileService) SaveProfile(ctx context.Context, req SaveProfileRequest) (*SaveProfileResponse, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if req.Age <= 0 {
		missing = append(missing, "age")
	}
	if strings.TrimSpace(req.Gender) == "" {
		missing = append(missing, "gender")
	}
	if strings.TrimSpace(req.Mobile) == "" {
		missing = append(missing, "mobile")
	}
	if len(req.EmergencyContacts) == 0 {
		missing = append(missing, "emergencyContacts")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	user := &domain.User{
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Phone:  req.Mobile,
		// medicalHistory 可选，缺省存空串
		MedicalHistory:        sql.NullString{String: req.MedicalHistory, Valid: true},
		EmergencyContactName:  req.EmergencyContacts[0].Name,
		EmergencyContactPhone: req.EmergencyContacts[0].Phone,
	}

	userID, err := s.users.UpsertByPhone(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile saved",
		zap.Int64("user_id", userID),
		zap.String("phone", req.Mobile),
	)

	return &SaveProfileResponse{UserID: userID}, nil
}

// GetProfile 根据 user_id 获取用户档案
func (s *profileService) GetProfile(ctx context.Context, userID int64) (*ProfileDTO, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileDTO{
		UserID:                user.UserID,
		Name:                  user.Name,
		Age:                   user.Age,
		Gender:                user.Gender,
		Phone:                 user.Phone,
		MedicalHistory:        user.MedicalHistory.String,
		EmergencyContactName:  user.EmergencyContactName,
		EmergencyContactPhone: user.EmergencyContactPhone,
	}, nil
}
