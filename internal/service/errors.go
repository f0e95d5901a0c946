package service

import "errors"

// ErrValidation 请求参数缺失或非法（不产生任何数据变更）
var ErrValidation = errors.New("validation failed")

// ErrScorerUnavailable 风险评分模型不可达或返回错误
// 调用方可自行重试 evaluate，服务端不做自动重试
var ErrScorerUnavailable = errors.New("risk scorer unavailable")
