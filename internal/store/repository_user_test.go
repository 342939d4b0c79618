// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testUser(email string) models.User {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return models.User{
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser("ranger@example.com")

	mock.ExpectQuery("INSERT INTO users .* ON CONFLICT \\(email\\) DO NOTHING RETURNING user_id").
		WithArgs(user.Email, user.PasswordHash, "user", sqlmock.AnyArg(), user.CreatedAt, user.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_ConflictReturnsNoRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.CreateUser(context.Background(), testUser("ranger@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), testUser("ranger@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), testUser("ranger@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		rows := sqlmock.NewRows(userColumns).
			AddRow(3, "keeper@example.com", "hash", "admin", nil, now, now)
		mock.ExpectQuery("SELECT user_id, email, password_hash, role, display_name, created_at, updated_at FROM users WHERE email = \\$1").
			WithArgs("keeper@example.com").
			WillReturnRows(rows)

		user, err := repo.FindUserByEmail(context.Background(), "keeper@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.UserID)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Empty(t, user.DisplayName)
		assert.Equal(t, "keeper", user.PublicName())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT .* FROM users WHERE email").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT .* FROM users WHERE email").
			WillReturnError(errors.New("boom"))

		_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(userColumns).
		AddRow(9, "vet@example.com", "hash", "user", "Dr. Vet", now, now)
	mock.ExpectQuery("SELECT .* FROM users WHERE user_id = \\$1").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	user, err := repo.FindUserByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Vet", user.PublicName())
}

func TestUpdateCredentials(t *testing.T) {
	user := testUser("new@example.com")
	user.UserID = 5

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users SET email = \\$1, password_hash = \\$2, updated_at = \\$3 WHERE \\(user_id = \\$4 AND password_hash = \\$5\\)").
					WithArgs(user.Email, user.PasswordHash, user.UpdatedAt, user.UserID, "old-hash").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "hash changed concurrently",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrCredentialsChanged,
		},
		{
			name: "email taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			err := repo.UpdateCredentials(context.Background(), user, "old-hash")
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newSQLiteDB(t), logger.Nop())

	created, err := repo.CreateUser(ctx, testUser("ranger@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = repo.CreateUser(ctx, testUser("ranger@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists, "second insert with the same email must be rejected")

	other, err := repo.CreateUser(ctx, testUser("keeper@example.com"))
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, "ranger@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))

	// email collision leaves both rows untouched
	clash := found
	clash.Email = other.Email
	clash.PasswordHash = "new-hash"
	err = repo.UpdateCredentials(ctx, clash, found.PasswordHash)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// stale expected hash is rejected
	changed := found
	changed.Email = "renamed@example.com"
	err = repo.UpdateCredentials(ctx, changed, "stale-hash")
	assert.ErrorIs(t, err, ErrCredentialsChanged)

	unchanged, err := repo.FindUserByID(ctx, found.UserID)
	require.NoError(t, err)
	assert.Equal(t, found.Email, unchanged.Email)
	assert.Equal(t, found.PasswordHash, unchanged.PasswordHash)

	// matching hash succeeds
	changed.PasswordHash = "new-hash"
	require.NoError(t, repo.UpdateCredentials(ctx, changed, found.PasswordHash))

	updated, err := repo.FindUserByID(ctx, found.UserID)
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	_, err = repo.FindUserByEmail(ctx, "ranger@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
