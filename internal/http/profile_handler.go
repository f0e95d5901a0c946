package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inhaler-monitor/internal/service"

	"go.uber.org/zap"
)

// ProfileHandler 用户档案 Handler
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler 创建用户档案 Handler
func NewProfileHandler(profileService service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// SaveProfile
	case path == "/api/v1/profiles" && r.Method == http.MethodPost:
		h.SaveProfile(w, r)
	// GetProfile
	case r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/profiles/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.GetProfile(w, r, userID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SaveProfile 保存用户档案（按手机号 upsert）
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req service.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrValidation))
		return
	}

	resp, err := h.profileService.SaveProfile(r.Context(), req)
	if err != nil {
		h.logger.Warn("SaveProfile failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Ok(resp))
}

// GetProfile 获取用户档案
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request, userID int64) {
	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(profile))
}
