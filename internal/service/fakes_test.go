package service

import (
	"context"
	"fmt"
	"sync"

	"inhaler-monitor/internal/domain"
	"inhaler-monitor/internal/repository"
)

// 内存 fake 存储（替换 Postgres 仓库，接口与 stores.go 一致）

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User // phone -> user
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) UpsertByPhone(ctx context.Context, user *domain.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.Phone]; ok {
		user.UserID = existing.UserID
	} else {
		f.nextID++
		user.UserID = f.nextID
	}
	stored := *user
	f.users[user.Phone] = &stored
	return user.UserID, nil
}

func (f *fakeUserStore) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.UserID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %d", repository.ErrNotFound, userID)
}

type fakeSensorStore struct {
	mu       sync.Mutex
	nextID   int64
	readings []domain.SensorReading
}

func (f *fakeSensorStore) CreateReading(ctx context.Context, reading *domain.SensorReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	reading.ReadingID = f.nextID
	f.readings = append(f.readings, *reading)
	return nil
}

func (f *fakeSensorStore) ListReadings(ctx context.Context, userID int64) ([]domain.SensorReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.SensorReading
	for _, r := range f.readings {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeSensorStore) LatestReading(ctx context.Context, userID int64) (*domain.SensorReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *domain.SensorReading
	for i := range f.readings {
		r := &f.readings[i]
		if r.UserID != userID {
			continue
		}
		if latest == nil || r.Timestamp.After(latest.Timestamp) || (r.Timestamp.Equal(latest.Timestamp) && r.ReadingID > latest.ReadingID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%w: no sensor data for user %d", repository.ErrNotFound, userID)
	}
	copied := *latest
	return &copied, nil
}

type fakeQuizStore struct {
	mu        sync.Mutex
	nextID    int64
	responses []domain.QuizResponse
}

func (f *fakeQuizStore) CreateResponses(ctx context.Context, responses []domain.QuizResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range responses {
		f.nextID++
		r.ResponseID = f.nextID
		f.responses = append(f.responses, r)
	}
	return nil
}

func (f *fakeQuizStore) ListResponses(ctx context.Context, userID int64) ([]domain.QuizResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.QuizResponse
	for _, r := range f.responses {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeQuizStore) LatestAnswers(ctx context.Context, userID int64) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	answers := make(map[string]string)
	// responses 按 ResponseID 递增保存，后写覆盖前写即得最新回答
	for _, r := range f.responses {
		if r.UserID == userID {
			answers[r.Question] = r.Answer
		}
	}
	return answers, nil
}

type fakeUsageStore struct {
	mu     sync.Mutex
	counts map[int64]int64
}

func newFakeUsageStore() *fakeUsageStore {
	return &fakeUsageStore{counts: make(map[int64]int64)}
}

func (f *fakeUsageStore) IncrementUsage(ctx context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[userID]++
	return f.counts[userID], nil
}

func (f *fakeUsageStore) GetUsage(ctx context.Context, userID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count, ok := f.counts[userID]
	if !ok {
		return 0, fmt.Errorf("%w: no inhaler usage for user %d", repository.ErrNotFound, userID)
	}
	return count, nil
}

type fakeAlertStore struct {
	mu        sync.Mutex
	alerts    []domain.Alert
	createErr error
}

func (f *fakeAlertStore) CreateAlert(ctx context.Context, alert *domain.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertStore) ListAlerts(ctx context.Context, userID int64) ([]domain.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Alert
	for _, a := range f.alerts {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

// fakeScorer 可编程的评分模型
type fakeScorer struct {
	mu       sync.Mutex
	score    float64
	err      error
	calls    int
	lastArgs map[string]any
}

func (f *fakeScorer) Score(ctx context.Context, features map[string]any) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastArgs = features
	if f.err != nil {
		return 0, f.err
	}
	return f.score, nil
}

// fakeNotifier 记录下游通知调用
type fakeNotifier struct {
	mu     sync.Mutex
	alerts []domain.Alert
	err    error
}

func (f *fakeNotifier) UpdateLatestAlert(ctx context.Context, alert *domain.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, *alert)
	return nil
}
