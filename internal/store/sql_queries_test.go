// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserIfAbsentQuery(t *testing.T) {
	user := models.User{Email: "a@example.com", PasswordHash: "h", Role: models.RoleUser, CreatedAt: time.Now()}

	query, args, err := buildInsertUserIfAbsentQuery(dollar, user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (email,password_hash,role,display_name,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (email) DO NOTHING RETURNING user_id",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "a@example.com", args[0])
	assert.Equal(t, "user", args[2])
	assert.Equal(t, sql.NullString{}, args[3])

	query, _, err = buildInsertUserIfAbsentQuery(question, user)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?,?,?,?)")
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(dollar, sq.Eq{"email": "a@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, email, password_hash, role, display_name, created_at, updated_at FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"a@example.com"}, args)
}

func Test_buildUpdateCredentialsQuery(t *testing.T) {
	user := models.User{UserID: 4, Email: "b@example.com", PasswordHash: "new"}

	query, args, err := buildUpdateCredentialsQuery(question, user, "old")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET email = ?, password_hash = ?, updated_at = ? WHERE (user_id = ? AND password_hash = ?)", query)
	require.Len(t, args, 5)
	assert.Equal(t, int64(4), args[3])
	assert.Equal(t, "old", args[4])
}

func Test_buildSelectUploadRecordsQuery(t *testing.T) {
	query, args, err := buildSelectUploadRecordsQuery(dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "FROM upload_records ORDER BY created_at DESC, record_id DESC"))
}

func Test_nullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.True(t, nullString("Dr. Vet").Valid)
}
