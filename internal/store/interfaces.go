// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists sanctuary accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user unless its email is already registered, in
	// which case [ErrEmailAlreadyExists] is returned. The check and the
	// insert are a single statement.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no account has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no account has userID.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateCredentials writes user's email, password hash and updated_at
	// only if the stored hash still equals expectedHash. Otherwise
	// [ErrCredentialsChanged] is returned and nothing changes. An email
	// owned by another account yields [ErrEmailAlreadyExists].
	UpdateCredentials(ctx context.Context, user models.User, expectedHash string) error
}

// UploadRecordRepository persists annotated image + CSV records.
type UploadRecordRepository interface {
	SaveUploadRecord(ctx context.Context, record models.UploadRecord) (models.UploadRecord, error)

	// ListUploadRecords returns all records, newest first, or
	// [ErrNoUploadRecords] when there are none.
	ListUploadRecords(ctx context.Context) ([]models.UploadRecord, error)
}

// TransientFileStorage keeps uploaded images on local disk for the duration
// of a single detection call.
type TransientFileStorage interface {
	// Save writes content under name and returns the number of bytes written.
	Save(ctx context.Context, name string, content io.Reader) (int64, error)

	// Open returns the stored file or [ErrTransientFileNotFound].
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes the file; a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Sweep removes every file last modified before olderThan and returns
	// how many were removed.
	Sweep(ctx context.Context, olderThan time.Time) (int, error)
}
