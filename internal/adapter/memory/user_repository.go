// Package memory provides in-memory repository variants sharing the port
// contracts with the MySQL adapters. They back the use-case tests and any
// store-free deployment of the service.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, input domain.NewUser) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the lock: this is the in-memory stand-in for the unique
	// index the MySQL adapter relies on.
	for _, existing := range r.users {
		if existing.Email == input.Email {
			return domain.User{}, domain.ErrEmailTaken
		}
	}

	now := time.Now()
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         cloneString(input.Name),
		PasswordHash: input.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	return cloneUser(user), nil
}

func (r *UserRepository) FindByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	clone := cloneUser(user)
	return &clone, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := cloneUser(user)
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) UpdateName(_ context.Context, userID string, name *string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.NewNotFoundError("User not found")
	}
	user.Name = cloneString(name)
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return cloneUser(user), nil
}

func (r *UserRepository) UpdatePasswordHash(_ context.Context, userID string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.NewNotFoundError("User not found")
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return nil
}

func (r *UserRepository) DeleteByID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domain.NewNotFoundError("User not found")
	}
	delete(r.users, userID)
	return nil
}

func cloneUser(user domain.User) domain.User {
	user.Name = cloneString(user.Name)
	return user
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
