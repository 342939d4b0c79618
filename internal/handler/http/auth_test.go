// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	router, mocks := newProductionServer(t)

	creds := models.Credentials{Email: "ranger@example.com", Password: "secret"}
	user := models.User{UserID: 1, Email: creds.Email, Role: models.RoleUser}

	mocks.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(user, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", creds, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.TokenResponse{Message: app.MsgUserRegistered, Token: "signed.jwt"}, resp)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"duplicate email", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, app.MsgUserAlreadyExists},
		{"missing email", invalidData(validators.ErrEmptyEmail), http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
		{"missing password", invalidData(validators.ErrEmptyPassword), http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
		{"unknown role", invalidData(validators.ErrInvalidRole), http.StatusBadRequest, app.MsgInvalidRole},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newProductionServer(t)
			mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.Credentials{Email: "a@example.com"}, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Nil(t, resp.Details, "no internal details outside development")
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newProductionServer(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rec).Error)
}

func TestRegister_TokenFailure(t *testing.T) {
	router, mocks := newProductionServer(t)

	mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.Credentials{Email: "a@example.com", Password: "pw"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rec).Error)
}

func TestRegister_DevelopmentExposesDetails(t *testing.T) {
	router, mocks := newTestServer(t, testDevelopmentApp)
	mocks.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection refused"))

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", models.Credentials{Email: "a@example.com", Password: "pw"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "connection refused", decodeError(t, rec).Details)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, mocks := newProductionServer(t)

	creds := models.Credentials{Email: "ranger@example.com", Password: "secret"}
	user := models.User{UserID: 3, Email: creds.Email, Role: models.RoleUser}

	mocks.auth.EXPECT().Login(gomock.Any(), creds).Return(user, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", creds, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgLoginSuccessful, resp.Message)
	assert.Equal(t, "signed.jwt", resp.Token)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidEmailOrPassword},
		{"missing password", invalidData(validators.ErrEmptyPassword), http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newProductionServer(t)
			mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := doRequest(t, router, http.MethodPost, "/api/auth/login", models.Credentials{Email: "a@example.com", Password: "x"}, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

// ── profile ──────────────────────────────────────────────────────────────────

func expectToken(mocks testMocks, raw string, token models.Token) {
	mocks.auth.EXPECT().ParseToken(gomock.Any(), raw).Return(token, nil)
}

func TestProfile(t *testing.T) {
	router, mocks := newProductionServer(t)

	expectToken(mocks, "tok", models.Token{UserID: 7, Role: models.RoleUser})
	mocks.auth.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.Profile{
		Email:       "vet@example.com",
		DisplayName: "vet",
		Role:        models.RoleUser,
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/auth/profile", nil, bearer("tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"vet@example.com","displayName":"vet","role":"user"}`, rec.Body.String())
}

func TestProfile_UserNotFound(t *testing.T) {
	router, mocks := newProductionServer(t)

	expectToken(mocks, "tok", models.Token{UserID: 7, Role: models.RoleUser})
	mocks.auth.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.Profile{}, fmt.Errorf("profile lookup failed: %w", store.ErrUserNotFound))

	rec := doRequest(t, router, http.MethodGet, "/api/auth/profile", nil, bearer("tok"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeError(t, rec).Error)
}

// ── profile update ───────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	router, mocks := newProductionServer(t)

	expectToken(mocks, "tok", models.Token{UserID: 7, Role: models.RoleUser})
	mocks.auth.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.ProfileUpdate) error {
			assert.Equal(t, models.ProfileUpdate{
				UserID:          7,
				Email:           "new@example.com",
				CurrentPassword: "old",
				NewPassword:     "new",
			}, u)
			return nil
		},
	)

	body := `{"email":"new@example.com","currentPassword":"old","newPassword":"new","userId":99}`
	rec := doRequest(t, router, http.MethodPut, "/api/user/update", body, bearer("tok"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+app.MsgProfileUpdated+`"}`, rec.Body.String())
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"wrong current password", service.ErrWrongPassword, http.StatusBadRequest, app.MsgCurrentPasswordWrong},
		{"email taken", fmt.Errorf("profile update failed: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, app.MsgEmailInUse},
		{"missing email", invalidData(validators.ErrEmptyEmail), http.StatusBadRequest, app.MsgProfileFieldsRequired},
		{"missing current password", invalidData(validators.ErrEmptyCurrentPassword), http.StatusBadRequest, app.MsgProfileFieldsRequired},
		{"user gone", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newProductionServer(t)
			expectToken(mocks, "tok", models.Token{UserID: 7, Role: models.RoleUser})
			mocks.auth.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(tt.serviceErr)

			rec := doRequest(t, router, http.MethodPut, "/api/user/update", `{"email":"x@example.com","currentPassword":"pw"}`, bearer("tok"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

// ── admin ────────────────────────────────────────────────────────────────────

func TestAdmin(t *testing.T) {
	tests := []struct {
		name         string
		role         models.Role
		authorizeErr error
		wantStatus   int
		wantBody     string
	}{
		{"admin is welcomed", models.RoleAdmin, nil, http.StatusOK, `{"message":"Welcome, Admin!"}`},
		{"user is forbidden", models.RoleUser, service.ErrForbidden, http.StatusForbidden, `{"error":"` + app.MsgForbiddenNotAdmin + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newProductionServer(t)

			token := models.Token{UserID: 1, Role: tt.role}
			expectToken(mocks, "tok", token)
			mocks.auth.EXPECT().Authorize(gomock.Any(), token, models.RoleAdmin).Return(tt.authorizeErr)

			rec := doRequest(t, router, http.MethodGet, "/api/admin", nil, bearer("tok"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
