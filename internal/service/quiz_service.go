package service

import (
	"context"
	"fmt"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// QuizService 问卷服务接口
type QuizService interface {
	SubmitAnswers(ctx context.Context, req SubmitAnswersRequest) (*SubmitAnswersResponse, error)
	ListResponses(ctx context.Context, userID int64) ([]QuizResponseDTO, error)
}

// SubmitAnswersRequest 提交问卷请求
type SubmitAnswersRequest struct {
	UserID  int64             `json:"user_id"`
	Answers map[string]string `json:"answers"`
}

// SubmitAnswersResponse 提交问卷响应
type SubmitAnswersResponse struct {
	Stored int `json:"stored"` // 实际入库的回答条数（不含被过滤的问题）
}

// QuizResponseDTO 问卷回答
type QuizResponseDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// quizService 实现
type quizService struct {
	responses QuizStore
	logger    *zap.Logger
}

// NewQuizService 创建 QuizService 实例
func NewQuizService(responses QuizStore, logger *zap.Logger) QuizService {
	return &quizService{
		responses: responses,
		logger:    logger,
	}
}

// SubmitAnswers 提交问卷回答
// 识别集合之外的问题静默丢弃（显式过滤，不报错）；识别的问题按提交顺序追加入库
func (s *quizService) SubmitAnswers(ctx context.Context, req SubmitAnswersRequest) (*SubmitAnswersResponse, error) {
	if req.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("%w: provide at least one answer", ErrValidation)
	}

	// 过滤步骤：只保留识别的问题，按枚举顺序稳定遍历
	var accepted []domain.QuizResponse
	for _, question := range domain.RecognizedQuestions {
		answer, ok := req.Answers[question]
		if !ok {
			continue
		}
		accepted = append(accepted, domain.QuizResponse{
			UserID:   req.UserID,
			Question: question,
			Answer:   answer,
		})
	}

	if dropped := len(req.Answers) - len(accepted); dropped > 0 {
		s.logger.Debug("Dropped unrecognized quiz questions",
			zap.Int64("user_id", req.UserID),
			zap.Int("dropped", dropped),
		)
	}

	if err := s.responses.CreateResponses(ctx, accepted); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz answers submitted",
		zap.Int64("user_id", req.UserID),
		zap.Int("stored", len(accepted)),
	)

	return &SubmitAnswersResponse{Stored: len(accepted)}, nil
}

// ListResponses 获取用户全部问卷回答
func (s *quizService) ListResponses(ctx context.Context, userID int64) ([]QuizResponseDTO, error) {
	responses, err := s.responses.ListResponses(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]QuizResponseDTO, 0, len(responses))
	for _, r := range responses {
		result = append(result, QuizResponseDTO{
			Question: r.Question,
			Answer:   r.Answer,
		})
	}

	return result, nil
}
