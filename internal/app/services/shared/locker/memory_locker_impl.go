package locker

import (
	"context"
	"medipos-service/internal/app/contracts"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryEntry
}

// NewMemoryLocker is the in-process locker for demo/offline mode, where a
// single instance owns all state.
func NewMemoryLocker() contracts.LockerService {
	return &memoryLocker{locks: make(map[string]memoryEntry)}
}

func (m *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if entry, ok := m.locks[key]; ok && now.Before(entry.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	m.locks[key] = memoryEntry{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (m *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[key]
	if !ok || entry.value != lockValue {
		return nil
	}
	delete(m.locks, key)
	return nil
}
