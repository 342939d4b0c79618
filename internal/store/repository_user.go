// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation, lookup and credential updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user with ON CONFLICT DO NOTHING and returns it with
// the assigned UserID.
//
// Error handling:
//   - no row returned (conflict on email) → [ErrEmailAlreadyExists].
//   - unique violation reported by the driver → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserIfAbsentQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
		return models.User{}, ErrEmailAlreadyExists
	case err != nil && r.db.isDuplicate(err):
		return models.User{}, ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the account with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, eq sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, eq)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, err
	}

	var (
		user        models.User
		role        string
		displayName sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&role,
		&displayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Role = models.Role(role)
	user.DisplayName = displayName.String
	user.CreatedAt = utc(user.CreatedAt)
	user.UpdatedAt = utc(user.UpdatedAt)

	return user, nil
}

// UpdateCredentials performs a conditional UPDATE keyed on user_id and the
// previously verified password hash.
func (r *userRepository) UpdateCredentials(ctx context.Context, user models.User, expectedHash string) error {
	log := logger.FromContext(ctx).WithUserID(user.UserID)

	query, args, err := buildUpdateCredentialsQuery(r.db.builder, user, expectedHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.isDuplicate(err) {
			return ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error updating credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.UpdateCredentials").Msg("stored password hash changed, update rejected")
		return ErrCredentialsChanged
	}

	return nil
}
