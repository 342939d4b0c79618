// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator(5 << 20)
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	creds := models.Credentials{Email: "a@example.com", Password: "pw"}
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, creds, "nickname"), ErrUnknownField)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid without role", creds: models.Credentials{Email: "a@example.com", Password: "pw"}},
		{name: "valid admin", creds: models.Credentials{Email: "a@example.com", Password: "pw", Role: models.RoleAdmin}},
		{name: "missing email", creds: models.Credentials{Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "blank email", creds: models.Credentials{Email: "  ", Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "missing password", creds: models.Credentials{Email: "a@example.com"}, wantErr: ErrEmptyPassword},
		{name: "unknown role", creds: models.Credentials{Email: "a@example.com", Password: "pw", Role: "owner"}, wantErr: ErrInvalidRole},
		{
			name:   "login ignores role",
			creds:  models.Credentials{Email: "a@example.com", Password: "pw", Role: "owner"},
			fields: []string{FieldEmail, FieldPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ProfileUpdate(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	valid := models.ProfileUpdate{UserID: 1, Email: "a@example.com", CurrentPassword: "pw"}
	assert.NoError(t, v.Validate(ctx, valid))

	noUser := valid
	noUser.UserID = 0
	assert.ErrorIs(t, v.Validate(ctx, noUser), ErrInvalidUserID)

	noEmail := valid
	noEmail.Email = ""
	assert.ErrorIs(t, v.Validate(ctx, noEmail), ErrEmptyEmail)

	noPassword := valid
	noPassword.CurrentPassword = ""
	assert.ErrorIs(t, v.Validate(ctx, &noPassword), ErrEmptyCurrentPassword)
}

func TestValidate_UploadRecord(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	valid := models.UploadRecord{ImageFilename: "a.jpg", ImageData: "YQ==", CSVFilename: "a.csv", CSVData: "YQ=="}
	assert.NoError(t, v.Validate(ctx, valid))

	for _, mutate := range []func(r *models.UploadRecord){
		func(r *models.UploadRecord) { r.ImageFilename = "" },
		func(r *models.UploadRecord) { r.ImageData = "" },
		func(r *models.UploadRecord) { r.CSVFilename = " " },
		func(r *models.UploadRecord) { r.CSVData = "" },
	} {
		record := valid
		mutate(&record)
		assert.ErrorIs(t, v.Validate(ctx, record), ErrEmptyUploadRecordField)
	}
}

func TestValidate_ImageUpload(t *testing.T) {
	v := NewRequestValidator(10)
	ctx := context.Background()

	valid := models.ImageUpload{Filename: "a.jpg", ContentType: "image/jpeg", Size: 10, Content: strings.NewReader("0123456789")}
	assert.NoError(t, v.Validate(ctx, valid))

	upper := valid
	upper.ContentType = "IMAGE/PNG"
	assert.NoError(t, v.Validate(ctx, upper))

	noFile := valid
	noFile.Content = nil
	assert.ErrorIs(t, v.Validate(ctx, noFile), ErrNoFile)

	pdf := valid
	pdf.ContentType = "application/pdf"
	assert.ErrorIs(t, v.Validate(ctx, pdf), ErrNotAnImage)

	big := valid
	big.Size = 11
	assert.ErrorIs(t, v.Validate(ctx, big), ErrFileTooLarge)

	assert.NoError(t, NewRequestValidator(0).Validate(ctx, big), "zero limit disables the size check")
}
