package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// QuizResponsesRepository 问卷回答仓库
type QuizResponsesRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuizResponsesRepository 创建问卷回答仓库
func NewQuizResponsesRepository(db *sql.DB, logger *zap.Logger) *QuizResponsesRepository {
	return &QuizResponsesRepository{
		db:     db,
		logger: logger,
	}
}

// CreateResponses 批量追加问卷回答（单事务）
// 不去重：重复提交会累积新行，读取侧按 response_id 取最新
func (r *QuizResponsesRepository) CreateResponses(ctx context.Context, responses []domain.QuizResponse) error {
	if len(responses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quiz_responses (user_id, question, answer)
		VALUES ($1, $2, $3)
	`

	for _, resp := range responses {
		if _, err := tx.ExecContext(ctx, query, resp.UserID, resp.Question, resp.Answer); err != nil {
			return fmt.Errorf("failed to insert quiz response: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quiz responses: %w", err)
	}

	return nil
}

// ListResponses 获取用户全部问卷回答（按写入顺序）
func (r *QuizResponsesRepository) ListResponses(ctx context.Context, userID int64) ([]domain.QuizResponse, error) {
	query := `
		SELECT response_id, user_id, question, answer
		FROM quiz_responses
		WHERE user_id = $1
		ORDER BY response_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz responses: %w", err)
	}
	defer rows.Close()

	var responses []domain.QuizResponse
	for rows.Next() {
		var resp domain.QuizResponse
		if err := rows.Scan(&resp.ResponseID, &resp.UserID, &resp.Question, &resp.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan quiz response: %w", err)
		}
		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quiz responses: %w", err)
	}

	return responses, nil
}

// LatestAnswers 获取用户每个问题的最新回答（question -> answer）
// 同一问题存在多行时取 response_id 最大的一行
func (r *QuizResponsesRepository) LatestAnswers(ctx context.Context, userID int64) (map[string]string, error) {
	query := `
		SELECT DISTINCT ON (question) question, answer
		FROM quiz_responses
		WHERE user_id = $1
		ORDER BY question, response_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest quiz answers: %w", err)
	}
	defer rows.Close()

	answers := make(map[string]string)
	for rows.Next() {
		var question, answer string
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, fmt.Errorf("failed to scan quiz answer: %w", err)
		}
		answers[question] = answer
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quiz answers: %w", err)
	}

	return answers, nil
}
