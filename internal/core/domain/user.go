package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the only user representation handed to callers outside the
// persistence boundary. It never carries the password hash.
type PublicUser struct {
	ID        string
	Email     string
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUser is the record handed to the user repository on insert.
type NewUser struct {
	Email        string
	Name         *string
	PasswordHash string
}

type RegisterUserInput struct {
	Email    string
	Name     *string
	Password string
}

type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}
