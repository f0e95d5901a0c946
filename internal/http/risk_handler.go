package httpapi

import (
	"net/http"
	"strings"

	"inhaler-monitor/internal/service"

	"go.uber.org/zap"
)

// RiskHandler 风险评估与告警 Handler
type RiskHandler struct {
	riskService service.RiskService
	logger      *zap.Logger
}

// NewRiskHandler 创建风险评估 Handler
func NewRiskHandler(riskService service.RiskService, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		riskService: riskService,
		logger:      logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *RiskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// EvaluateRisk
	case strings.HasPrefix(path, "/api/v1/risk/evaluate/") && r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/risk/evaluate/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.EvaluateRisk(w, r, userID)
	// ListAlerts
	case strings.HasPrefix(path, "/api/v1/alerts/") && r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/alerts/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.ListAlerts(w, r, userID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// EvaluateRisk 触发一次聚合评估
// 评分模型不可用时返回 503，由客户端决定是否重试
func (h *RiskHandler) EvaluateRisk(w http.ResponseWriter, r *http.Request, userID int64) {
	resp, err := h.riskService.EvaluateRisk(r.Context(), userID)
	if err != nil {
		h.logger.Warn("EvaluateRisk failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(resp))
}

// ListAlerts 获取用户全部告警
func (h *RiskHandler) ListAlerts(w http.ResponseWriter, r *http.Request, userID int64) {
	alerts, err := h.riskService.ListAlerts(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{"alerts": alerts}))
}
