package redis

import (
	"context"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryKVRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryKVRepository backs sessions in demo/offline mode, where no
// redis instance is available. Values are stored JSON-encoded, matching
// the wire shape of the redis implementation.
func NewMemoryKVRepository() contracts.RedisRepository {
	return &memoryKVRepository{entries: make(map[string]memoryEntry)}
}

func (m *memoryKVRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: string(jsonValue), expiresAt: expiry(exp)}
	return nil
}

func (m *memoryKVRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok || expired(entry) {
		return "", nil
	}
	return entry.value, nil
}

func (m *memoryKVRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryKVRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if ok && !expired(entry) {
		return false, nil
	}
	m.entries[key] = memoryEntry{value: string(jsonValue), expiresAt: expiry(exp)}
	return true, nil
}

func expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return time.Now().Add(exp)
}

func expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}
