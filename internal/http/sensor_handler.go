package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inhaler-monitor/internal/service"

	"go.uber.org/zap"
)

// SensorHandler 传感器数据 Handler
type SensorHandler struct {
	sensorService service.SensorService
	logger        *zap.Logger
}

// NewSensorHandler 创建传感器数据 Handler
func NewSensorHandler(sensorService service.SensorService, logger *zap.Logger) *SensorHandler {
	return &SensorHandler{
		sensorService: sensorService,
		logger:        logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *SensorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// UploadSensorData
	case path == "/api/v1/sensor-data" && r.Method == http.MethodPost:
		h.UploadSensorData(w, r)
	// ListSensorData
	case r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/sensor-data/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.ListSensorData(w, r, userID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// UploadSensorData 上报一条传感器读数
func (h *SensorHandler) UploadSensorData(w http.ResponseWriter, r *http.Request) {
	var req service.RecordReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrValidation))
		return
	}

	if _, err := h.sensorService.RecordReading(r.Context(), req); err != nil {
		h.logger.Warn("UploadSensorData failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Ok(map[string]string{"message": "Sensor data uploaded successfully"}))
}

// ListSensorData 获取用户全部读数
func (h *SensorHandler) ListSensorData(w http.ResponseWriter, r *http.Request, userID int64) {
	readings, err := h.sensorService.ListReadings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{"user_data": readings}))
}
