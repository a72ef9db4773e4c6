package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomibudis/task-manager-webapp/internal/adapter/memory"
	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

func TestUserRepository_Create_RejectsDuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()

	_, err := repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h2"})
	require.True(t, errors.Is(err, domain.ErrEmailTaken))
}

func TestUserRepository_FindByEmail_IsExactMatch(t *testing.T) {
	repo := memory.NewUserRepository()

	_, err := repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	// Normalization happens in the use case, not here.
	found, err := repo.FindByEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	require.Nil(t, found)

	found, err = repo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestUserRepository_UpdateName(t *testing.T) {
	repo := memory.NewUserRepository()

	created, err := repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	name := "Ada Lovelace"
	updated, err := repo.UpdateName(context.Background(), created.ID, &name)
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	require.Equal(t, "Ada Lovelace", *updated.Name)

	cleared, err := repo.UpdateName(context.Background(), created.ID, nil)
	require.NoError(t, err)
	require.Nil(t, cleared.Name)

	_, err = repo.UpdateName(context.Background(), "missing", &name)
	require.True(t, domain.IsNotFound(err))
}

func TestUserRepository_DeleteByID(t *testing.T) {
	repo := memory.NewUserRepository()

	created, err := repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(context.Background(), created.ID))

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	err = repo.DeleteByID(context.Background(), created.ID)
	require.True(t, domain.IsNotFound(err))
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	repo := memory.NewUserRepository()

	created, err := repo.Create(context.Background(), domain.NewUser{Email: "ada@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), created.ID, "h2"))

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "h2", found.PasswordHash)

	err = repo.UpdatePasswordHash(context.Background(), "missing", "h3")
	require.True(t, domain.IsNotFound(err))
}
