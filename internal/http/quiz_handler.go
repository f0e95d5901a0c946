package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"inhaler-monitor/internal/service"

	"go.uber.org/zap"
)

// QuizHandler 问卷 Handler
type QuizHandler struct {
	quizService service.QuizService
	logger      *zap.Logger
}

// NewQuizHandler 创建问卷 Handler
func NewQuizHandler(quizService service.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// ServeHTTP 实现 http.Handler 接口
func (h *QuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	// SubmitQuiz
	case path == "/api/v1/quiz" && r.Method == http.MethodPost:
		h.SubmitQuiz(w, r)
	// ListQuizResponses
	case r.Method == http.MethodGet:
		userID, err := parseUserID(path, "/api/v1/quiz/")
		if err != nil {
			writeError(w, err)
			return
		}
		h.ListQuizResponses(w, r, userID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SubmitQuiz 提交问卷回答（识别集合外的问题会被静默丢弃）
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", service.ErrValidation))
		return
	}

	resp, err := h.quizService.SubmitAnswers(r.Context(), req)
	if err != nil {
		h.logger.Warn("SubmitQuiz failed", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Ok(resp))
}

// ListQuizResponses 获取用户全部问卷回答
func (h *QuizHandler) ListQuizResponses(w http.ResponseWriter, r *http.Request, userID int64) {
	responses, err := h.quizService.ListResponses(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{"quiz_responses": responses}))
}
