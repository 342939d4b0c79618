// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

var (
	userColumns = []string{
		"user_id",
		"email",
		"password_hash",
		"role",
		"display_name",
		"created_at",
		"updated_at",
	}

	uploadRecordColumns = []string{
		"record_id",
		"image_filename",
		"image_data",
		"csv_filename",
		"csv_data",
		"created_at",
		"updated_at",
	}
)

// buildInsertUserIfAbsentQuery inserts a user unless the email is taken.
// The unique email index decides; no returned row means the email exists.
func buildInsertUserIfAbsentQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns("email", "password_hash", "role", "display_name", "created_at", "updated_at").
		Values(
			user.Email,
			user.PasswordHash,
			string(user.Role),
			nullString(user.DisplayName),
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUserQuery selects a single user matching eq.
func buildSelectUserQuery(b sq.StatementBuilderType, eq sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(eq).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCredentialsQuery rewrites email and password hash only while the
// stored hash still equals expectedHash.
func buildUpdateCredentialsQuery(b sq.StatementBuilderType, user models.User, expectedHash string) (string, []any, error) {
	query, args, err := b.
		Update(user.TableName()).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt).
		Where(sq.And{
			sq.Eq{"user_id": user.UserID},
			sq.Eq{"password_hash": expectedHash},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertUploadRecordQuery(b sq.StatementBuilderType, record models.UploadRecord) (string, []any, error) {
	query, args, err := b.
		Insert(record.TableName()).
		Columns("image_filename", "image_data", "csv_filename", "csv_data", "created_at", "updated_at").
		Values(
			record.ImageFilename,
			record.ImageData,
			record.CSVFilename,
			record.CSVData,
			record.CreatedAt,
			record.UpdatedAt,
		).
		Suffix("RETURNING record_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUploadRecordsQuery lists every record, newest first. Ties on
// created_at are broken by the higher record_id.
func buildSelectUploadRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(uploadRecordColumns...).
		From(models.UploadRecord{}.TableName()).
		OrderBy("created_at DESC", "record_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// utc normalises timestamps read back from drivers that attach a local zone.
func utc(t time.Time) time.Time {
	return t.UTC()
}
