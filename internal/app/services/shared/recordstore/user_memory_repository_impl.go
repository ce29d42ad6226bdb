package recordstore

import (
	"context"
	"fmt"
	"medipos-service/internal/app/models"
	"medipos-service/internal/pkg/exceptions"
	"sync"
)

// UserStore keeps staff accounts in memory for demo/offline mode. Kept
// separate from Store: user records are operator data, not patient flow.
type UserStore struct {
	mu      sync.RWMutex
	users   []models.User
	userSeq int
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if user == nil || user.Email == "" || user.FullName == "" {
		return "", exceptions.ErrMissingRequiredEntityField(fmt.Errorf("user email and full name are required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return "", exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", user.Email))
		}
	}

	record := *user
	s.userSeq++
	record.ID = fmt.Sprintf("U%04d", s.userSeq)
	s.users = append(s.users, record)
	return record.ID, nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == userID {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}
