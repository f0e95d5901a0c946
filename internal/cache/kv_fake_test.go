package cache

import (
	"context"
	"sync"
	"time"
)

// FakeKVStore 内存 KV（测试用，记录最后一次写入的 TTL）
type FakeKVStore struct {
	mu      sync.Mutex
	data    map[string]string
	lastTTL time.Duration
	setErr  error
}

func NewFakeKVStore() *FakeKVStore {
	return &FakeKVStore{data: make(map[string]string)}
}

func (f *FakeKVStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

func (f *FakeKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.lastTTL = ttl
	return nil
}
