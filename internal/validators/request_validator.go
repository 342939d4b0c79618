// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account email.
	FieldEmail = "email"

	// FieldPassword targets the cleartext password of registration and login.
	FieldPassword = "password"

	// FieldRole targets the optional registration role; empty is allowed.
	FieldRole = "role"

	// FieldCurrentPassword targets the password confirming a profile change.
	FieldCurrentPassword = "current_password"

	// FieldUserID targets the token-derived owner of a profile change.
	FieldUserID = "user_id"

	// FieldImageFilename, FieldImageData, FieldCSVFilename and FieldCSVData
	// target the four mandatory upload record fields.
	FieldImageFilename = "image_filename"
	FieldImageData     = "image_data"
	FieldCSVFilename   = "csv_filename"
	FieldCSVData       = "csv_data"

	// FieldFile targets presence of an uploaded file.
	FieldFile = "file"

	// FieldContentType targets the image/* MIME type check.
	FieldContentType = "content_type"

	// FieldSize targets the upload size limit.
	FieldSize = "size"
)

// RequestValidator validates the request bodies accepted by the service.
type RequestValidator struct {
	maxUploadSize int64
}

// NewRequestValidator returns a [Validator] for credentials, profile
// updates, upload records and image uploads. Images larger than
// maxUploadSize bytes are rejected; zero disables the size check.
func NewRequestValidator(maxUploadSize int64) Validator {
	return &RequestValidator{maxUploadSize: maxUploadSize}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.UploadRecord:
		return v.validateUploadRecord(value, fields...)
	case *models.UploadRecord:
		return v.validateUploadRecord(*value, fields...)

	case models.ImageUpload:
		return v.validateImageUpload(value, fields...)
	case *models.ImageUpload:
		return v.validateImageUpload(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(credentials.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if credentials.Role != "" && !credentials.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, credentials.Role)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEmail, FieldCurrentPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if isBlank(update.Email) {
				return ErrEmptyEmail
			}
		case FieldCurrentPassword:
			if update.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUploadRecord(record models.UploadRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImageFilename, FieldImageData, FieldCSVFilename, FieldCSVData}
	}

	for _, f := range fields {
		var value string
		switch f {
		case FieldImageFilename:
			value = record.ImageFilename
		case FieldImageData:
			value = record.ImageData
		case FieldCSVFilename:
			value = record.CSVFilename
		case FieldCSVData:
			value = record.CSVData
		default:
			return ErrUnknownField
		}

		if isBlank(value) {
			return fmt.Errorf("%w: %s", ErrEmptyUploadRecordField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateImageUpload(upload models.ImageUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldContentType, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if upload.Content == nil {
				return ErrNoFile
			}
		case FieldContentType:
			if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
				return ErrNotAnImage
			}
		case FieldSize:
			if v.maxUploadSize > 0 && upload.Size > v.maxUploadSize {
				return ErrFileTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
