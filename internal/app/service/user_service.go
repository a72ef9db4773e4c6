package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !emailPattern.MatchString(email) {
		return domain.PublicUser{}, domain.NewValidationError("Invalid email")
	}
	if len(input.Password) < minPasswordLength {
		return domain.PublicUser{}, domain.NewValidationError("Password must be at least 8 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if existing != nil {
		return domain.PublicUser{}, domain.ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.PublicUser{}, err
	}

	// The pre-check above is racy; the repository maps a concurrent duplicate
	// insert to the same ErrEmailTaken, which is surfaced verbatim here.
	created, err := s.users.Create(ctx, domain.NewUser{
		Email:        email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return domain.PublicUser{}, err
	}

	return created.Public(), nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !s.hasher.Compare(password, user.PasswordHash) {
		return nil, nil
	}

	public := user.Public()
	return &public, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if user == nil {
		return domain.PublicUser{}, domain.NewNotFoundError("User not found")
	}
	return user.Public(), nil
}

func (s *UserService) ChangePassword(ctx context.Context, input domain.ChangePasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return domain.NewValidationError("New password must be at least 8 characters")
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("User not found")
	}

	if !s.hasher.Compare(input.CurrentPassword, user.PasswordHash) {
		return domain.NewValidationError("Current password is incorrect")
	}

	newHash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePasswordHash(ctx, input.UserID, newHash)
}

var _ ports.UserService = (*UserService)(nil)
