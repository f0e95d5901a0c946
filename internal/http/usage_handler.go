package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inhaler-monitor/internal/service"

	"go.uber.org/zap"
)

// UsageHandler 吸入器使用计数 Handler
type UsageHandler struct {
	usageService service.UsageService
	logger       *zap.Logger
}

// NewUsageHandler 创建吸入器使用计数 Handler
func NewUsageHandler(usageService service.UsageService, logger *zap.Logger) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
		logger:       logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// RecordUsage
	case path == "/api/v1/inhaler/usage" && r.Method == http.MethodPost:
		h.RecordUsage(w, r)
	// GetUsage
	case r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/inhaler/usage/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.GetUsage(w, r, userID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// RecordUsage 记录一次吸入器使用
func (h *UsageHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrValidation))
		return
	}

	usage, err := h.usageService.RecordUsage(r.Context(), req.UserID)
	if err != nil {
		h.logger.Warn("RecordUsage failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(usage))
}

// GetUsage 获取用户当前使用计数
func (h *UsageHandler) GetUsage(w http.ResponseWriter, r *http.Request, userID int64) {
	usage, err := h.usageService.GetUsage(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(usage))
}
