package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
	"github.com/tomibudis/task-manager-webapp/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const (
	insertUserQuery = `
INSERT INTO users (id, email, name, password_hash)
VALUES (?, ?, ?, ?);
`
	selectUserByIDQuery = `
SELECT id, email, name, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`
	selectUserByEmailQuery = `
SELECT id, email, name, password_hash, created_at, updated_at
FROM users
WHERE email = ?;
`
	updateUserNameQuery = `
UPDATE users SET name = ? WHERE id = ?;
`
	updateUserPasswordQuery = `
UPDATE users SET password_hash = ? WHERE id = ?;
`
	deleteUserQuery = `
DELETE FROM users WHERE id = ?;
`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Name         sql.NullString `db:"name"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input domain.NewUser) (domain.User, error) {
	id := uuid.NewString()

	var name sql.NullString
	if input.Name != nil {
		name = sql.NullString{String: *input.Name, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, insertUserQuery, id, input.Email, name, input.PasswordHash); err != nil {
		// The unique index on email is the fallback for registrations racing
		// past the use-case pre-check.
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	created, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return *created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserByIDQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	user := mapUserRowToDomainUser(row)
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	user := mapUserRowToDomainUser(row)
	return &user, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, userID string, name *string) (domain.User, error) {
	existing, err := r.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if existing == nil {
		return domain.User{}, domain.NewNotFoundError("User not found")
	}

	var value sql.NullString
	if name != nil {
		value = sql.NullString{String: *name, Valid: true}
	}
	if _, err := r.db.ExecContext(ctx, updateUserNameQuery, value, userID); err != nil {
		return domain.User{}, err
	}

	updated, err := r.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return *updated, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	existing, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFoundError("User not found")
	}

	_, err = r.db.ExecContext(ctx, updateUserPasswordQuery, passwordHash, userID)
	return err
}

func (r *UserRepository) DeleteByID(ctx context.Context, userID string) error {
	// Owned tasks go with the user through the ON DELETE CASCADE foreign key.
	res, err := r.db.ExecContext(ctx, deleteUserQuery, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("User not found")
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Name.Valid {
		value := row.Name.String
		user.Name = &value
	}
	return user
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
