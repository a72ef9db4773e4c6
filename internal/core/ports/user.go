package ports

import (
	"context"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

// UserRepository is the persistence capability for users. Find methods return
// a nil user (and nil error) when no row matches; mutating methods fail with a
// not-found domain error when the identifier does not resolve. Email lookup is
// a case-sensitive exact match: normalization is the caller's job.
type UserRepository interface {
	Create(ctx context.Context, input domain.NewUser) (domain.User, error)
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateName(ctx context.Context, userID string, name *string) (domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
	DeleteByID(ctx context.Context, userID string) error
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.PublicUser, error)
	// Authenticate returns a nil user without an error when the credentials do
	// not match, so callers cannot tell an unknown email from a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error)
	GetProfile(ctx context.Context, userID string) (domain.PublicUser, error)
	ChangePassword(ctx context.Context, input domain.ChangePasswordInput) error
}
