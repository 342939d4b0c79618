// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "role", RoleCtxKey.String())
}

func TestWithToken_RoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), models.Token{UserID: 42, Role: models.RoleAdmin})

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestGetFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRoleFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	userID, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Zero(t, userID)
}
