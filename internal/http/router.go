package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 基于 http.ServeMux 的路由器
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterRoutes 注册全部 API 路由
func (r *Router) RegisterRoutes(
	profile *ProfileHandler,
	sensor *SensorHandler,
	quiz *QuizHandler,
	usage *UsageHandler,
	risk *RiskHandler,
) {
	// 服务首页
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Smart Inhaler API!"})
	})

	// profiles
	r.Handle("/api/v1/profiles", profile.ServeHTTP)
	r.Handle("/api/v1/profiles/", profile.ServeHTTP)

	// sensor data
	r.Handle("/api/v1/sensor-data", sensor.ServeHTTP)
	r.Handle("/api/v1/sensor-data/", sensor.ServeHTTP)

	// quiz
	r.Handle("/api/v1/quiz", quiz.ServeHTTP)
	r.Handle("/api/v1/quiz/", quiz.ServeHTTP)

	// inhaler usage
	r.Handle("/api/v1/inhaler/usage", usage.ServeHTTP)
	r.Handle("/api/v1/inhaler/usage/", usage.ServeHTTP)

	// risk evaluation + alerts
	r.Handle("/api/v1/risk/evaluate/", risk.ServeHTTP)
	r.Handle("/api/v1/alerts/", risk.ServeHTTP)
}
