// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrInvalidUserID        = errors.New("invalid user ID")

	ErrEmptyUploadRecordField = errors.New("upload record field is required")

	ErrNoFile       = errors.New("no file uploaded")
	ErrNotAnImage   = errors.New("file is not an image")
	ErrFileTooLarge = errors.New("file too large")
)
