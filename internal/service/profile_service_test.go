package service

import (
	"context"
	"testing"

	"inhaler-monitor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validProfileRequest() SaveProfileRequest {
	return SaveProfileRequest{
		Name:           "Asha",
		Age:            29,
		Gender:         "female",
		Mobile:         "9876543210",
		MedicalHistory: "mild asthma",
		EmergencyContacts: []EmergencyContact{
			{Name: "Ravi", Phone: "9123456780"},
		},
	}
}

func TestSaveProfile_CreateThenUpdateByPhone(t *testing.T) {
	store := newFakeUserStore()
	svc := NewProfileService(store, zap.NewNop())

	first, err := svc.SaveProfile(context.Background(), validProfileRequest())
	require.NoError(t, err)

	// 同一手机号换名字再存：同一 user_id，档案反映第二次提交
	req := validProfileRequest()
	req.Name = "Asha Kumar"
	second, err := svc.SaveProfile(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)

	profile, err := svc.GetProfile(context.Background(), first.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Kumar", profile.Name)
	assert.Equal(t, "9876543210", profile.Phone)
	assert.Equal(t, "Ravi", profile.EmergencyContactName)
}

func TestSaveProfile_MissingFields(t *testing.T) {
	store := newFakeUserStore()
	svc := NewProfileService(store, zap.NewNop())

	req := validProfileRequest()
	req.Mobile = ""
	req.EmergencyContacts = nil

	_, err := svc.SaveProfile(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "mobile")
	assert.Contains(t, err.Error(), "emergencyContacts")
}

func TestSaveProfile_MedicalHistoryOptional(t *testing.T) {
	store := newFakeUserStore()
	svc := NewProfileService(store, zap.NewNop())

	req := validProfileRequest()
	req.MedicalHistory = ""

	resp, err := svc.SaveProfile(context.Background(), req)
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "", profile.MedicalHistory)
}

func TestGetProfile_NotFound(t *testing.T) {
	store := newFakeUserStore()
	svc := NewProfileService(store, zap.NewNop())

	_, err := svc.GetProfile(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
