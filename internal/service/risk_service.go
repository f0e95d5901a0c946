package service

import (
	"context"
	"fmt"
	"time"

	"inhaler-monitor/internal/domain"
	"inhaler-monitor/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 问卷特征标签，与 domain.RecognizedQuestions 一一对应（顺序一致）
// 标签名是模型的输入契约，不可改动
var quizFeatureLabels = []string{
	"Asthma Symptoms Frequency",
	"Triggers",
	"Weather Sensitivity",
	"Poor Air Quality Exposure",
	"Night Breathing Difficulty",
}

// AlertNotifier 告警下游通知（最新告警缓存等），失败不影响主流程
type AlertNotifier interface {
	UpdateLatestAlert(ctx context.Context, alert *domain.Alert) error
}

// RiskService 风险评估与告警服务接口
type RiskService interface {
	EvaluateRisk(ctx context.Context, userID int64) (*EvaluateRiskResponse, error)
	ListAlerts(ctx context.Context, userID int64) ([]AlertDTO, error)
}

// EvaluateRiskResponse 风险评估结果
type EvaluateRiskResponse struct {
	RiskScore    float64 `json:"risk_score"`
	AlertCreated bool    `json:"alert_created"`
}

// AlertDTO 告警
type AlertDTO struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// riskService 实现
type riskService struct {
	readings       SensorStore
	responses      QuizStore
	alerts         AlertStore
	scorer         RiskScorer
	notifier       AlertNotifier // 可为 nil（未启用 Redis）
	alertThreshold float64
	logger         *zap.Logger
	now            func() time.Time
}

// NewRiskService 创建 RiskService 实例
func NewRiskService(
	readings SensorStore,
	responses QuizStore,
	alerts AlertStore,
	scorer RiskScorer,
	notifier AlertNotifier,
	alertThreshold float64,
	logger *zap.Logger,
) RiskService {
	return &riskService{
		readings:       readings,
		responses:      responses,
		alerts:         alerts,
		scorer:         scorer,
		notifier:       notifier,
		alertThreshold: alertThreshold,
		logger:         logger,
		now:            time.Now,
	}
}

// EvaluateRisk 聚合评估流程：
// 读取最新传感器快照和每个问题的最新回答，合并为特征向量提交给评分模型，
// 分数达到阈值时写入一条告警。先读后写：模型调用成功前不产生任何数据变更。
func (s *riskService) EvaluateRisk(ctx context.Context, userID int64) (*EvaluateRiskResponse, error) {
	// 1. 最新传感器读数
	reading, err := s.readings.LatestReading(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. 每个问题的最新回答
	answers, err := s.responses.LatestAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no quiz responses for user %d", repository.ErrNotFound, userID)
	}

	// 3. 构造特征向量（7 个传感器特征 + 5 个问卷特征）
	features := map[string]any{
		"AQI":         reading.AirQuality,
		"PM2.5":       reading.PM25,
		"SO2 level":   reading.SO2Level,
		"NO2 level":   reading.NO2Level,
		"CO2 level":   reading.CO2Level,
		"Humidity":    reading.Humidity,
		"Temperature": reading.Temperature,
	}
	for i, question := range domain.RecognizedQuestions {
		answer, ok := answers[question]
		if !ok {
			return nil, fmt.Errorf("%w: no answer recorded for question %q (user %d)",
				repository.ErrNotFound, question, userID)
		}
		features[quizFeatureLabels[i]] = answer
	}

	// 4. 调用评分模型（由客户端限定超时，失败不重试、不写告警）
	score, err := s.scorer.Score(ctx, features)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Risk score received",
		zap.Int64("user_id", userID),
		zap.Float64("risk_score", score),
	)

	// 5. 达到阈值才落告警；无论是否告警都把分数返回给调用方
	alertCreated := false
	if score >= s.alertThreshold {
		alert := &domain.Alert{
			AlertID:   uuid.NewString(),
			UserID:    userID,
			Message:   fmt.Sprintf("High Risk Detected: %v", score),
			Timestamp: s.now(),
		}
		if err := s.alerts.CreateAlert(ctx, alert); err != nil {
			return nil, err
		}
		alertCreated = true

		s.logger.Warn("High risk alert created",
			zap.Int64("user_id", userID),
			zap.Float64("risk_score", score),
			zap.String("alert_id", alert.AlertID),
		)

		// 下游缓存是尽力而为：失败只记日志，DB 行才是数据源
		if s.notifier != nil {
			if err := s.notifier.UpdateLatestAlert(ctx, alert); err != nil {
				s.logger.Error("Failed to update alert cache",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
		}
	}

	return &EvaluateRiskResponse{RiskScore: score, AlertCreated: alertCreated}, nil
}

// ListAlerts 获取用户全部告警
func (s *riskService) ListAlerts(ctx context.Context, userID int64) ([]AlertDTO, error) {
	alerts, err := s.alerts.ListAlerts(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, AlertDTO{
			Message:   a.Message,
			Timestamp: a.Timestamp,
		})
	}

	return result, nil
}
