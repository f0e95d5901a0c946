package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RiskScorer 外部风险评分模型（黑盒：特征向量进，分数出）
type RiskScorer interface {
	Score(ctx context.Context, features map[string]any) (float64, error)
}

// ScorerResponse 模型响应
// asthma_risk_score 缺失时按 0 处理（零值即默认）
type ScorerResponse struct {
	AsthmaRiskScore float64 `json:"asthma_risk_score"`
}

// ScorerClient 风险评分模型 HTTP 客户端
type ScorerClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewScorerClient 创建评分模型客户端
// 不配置重试：评估流程失败直接上报，由调用方决定是否重试
func NewScorerClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ScorerClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ScorerClient{
		httpClient: client,
		logger:     logger,
	}
}

// Score 提交特征向量，返回风险分数
// 传输错误、超时、非 2xx、响应不可解析一律视为模型不可用
func (c *ScorerClient) Score(ctx context.Context, features map[string]any) (float64, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(features).
		Post("/predict")

	if err != nil {
		c.logger.Error("Risk scorer call failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}

	if !resp.IsSuccess() {
		c.logger.Error("Risk scorer returned non-success status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return 0, fmt.Errorf("%w: unexpected status %d", ErrScorerUnavailable, resp.StatusCode())
	}

	var result ScorerResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		c.logger.Error("Failed to unmarshal risk scorer response", zap.Error(err))
		return 0, fmt.Errorf("%w: invalid response: %v", ErrScorerUnavailable, err)
	}

	c.logger.Debug("Received risk score", zap.Float64("asthma_risk_score", result.AsthmaRiskScore))

	return result.AsthmaRiskScore, nil
}
