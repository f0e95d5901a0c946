package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// SensorService 传感器数据服务接口
type SensorService interface {
	RecordReading(ctx context.Context, req RecordReadingRequest) (*domain.SensorReading, error)
	ListReadings(ctx context.Context, userID int64) ([]SensorReadingDTO, error)
}

// RecordReadingRequest 上报传感器数据请求
// 数值字段用指针区分"缺失"和"0"：任何必填字段缺失都要在错误里列出
type RecordReadingRequest struct {
	UserID      int64    `json:"user_id"`
	AirQuality  *float64 `json:"air_quality"`
	PM25        *float64 `json:"pm25"`
	SO2Level    *float64 `json:"so2_level"`
	NO2Level    *float64 `json:"no2_level"`
	CO2Level    *float64 `json:"co2_level"`
	Humidity    *float64 `json:"humidity"`
	Temperature *float64 `json:"temperature"`
}

// SensorReadingDTO 传感器读数
type SensorReadingDTO struct {
	Timestamp   time.Time `json:"timestamp"`
	AirQuality  float64   `json:"air_quality"`
	PM25        float64   `json:"pm25"`
	SO2Level    float64   `json:"so2_level"`
	NO2Level    float64   `json:"no2_level"`
	CO2Level    float64   `json:"co2_level"`
	Humidity    float64   `json:"humidity"`
	Temperature float64   `json:"temperature"`
}

// sensorService 实现
type sensorService struct {
	readings SensorStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewSensorService 创建 SensorService 实例
func NewSensorService(readings SensorStore, logger *zap.Logger) SensorService {
	return &sensorService{
		readings: readings,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordReading 校验并追加一条传感器读数
// timestamp 由服务端写入，数值不做范围校验（按上报值原样入库）
func (s *sensorService) RecordReading(ctx context.Context, req RecordReadingRequest) (*domain.SensorReading, error) {
	var missing []string
	if req.UserID == 0 {
		missing = append(missing, "user_id")
	}
	if req.AirQuality == nil {
		missing = append(missing, "air_quality")
	}
	if req.PM25 == nil {
		missing = append(missing, "pm25")
	}
	if req.SO2Level == nil {
		missing = append(missing, "so2_level")
	}
	if req.NO2Level == nil {
		missing = append(missing, "no2_level")
	}
	if req.CO2Level == nil {
		missing = append(missing, "co2_level")
	}
	if req.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if req.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	reading := &domain.SensorReading{
		UserID:      req.UserID,
		Timestamp:   s.now(),
		AirQuality:  *req.AirQuality,
		PM25:        *req.PM25,
		SO2Level:    *req.SO2Level,
		NO2Level:    *req.NO2Level,
		CO2Level:    *req.CO2Level,
		Humidity:    *req.Humidity,
		Temperature: *req.Temperature,
	}

	if err := s.readings.CreateReading(ctx, reading); err != nil {
		return nil, err
	}

	s.logger.Info("Sensor reading recorded",
		zap.Int64("user_id", reading.UserID),
		zap.Float64("air_quality", reading.AirQuality),
	)

	return reading, nil
}

// ListReadings 获取用户全部读数
func (s *sensorService) ListReadings(ctx context.Context, userID int64) ([]SensorReadingDTO, error) {
	readings, err := s.readings.ListReadings(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]SensorReadingDTO, 0, len(readings))
	for _, r := range readings {
		result = append(result, SensorReadingDTO{
			Timestamp:   r.Timestamp,
			AirQuality:  r.AirQuality,
			PM25:        r.PM25,
			SO2Level:    r.SO2Level,
			NO2Level:    r.NO2Level,
			CO2Level:    r.CO2Level,
			Humidity:    r.Humidity,
			Temperature: r.Temperature,
		})
	}

	return result, nil
}
