// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic `{message}` body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by registration and login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the body of every failed request.
//
// Details is only filled for upstream failures and, in development
// deployments, for internal errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// UploadResponse is returned by the upload proxy after a successful
// detection call.
type UploadResponse struct {
	Message           string `json:"message"`
	AnnotatedImageURL string `json:"annotatedImageUrl"`
	CSVURL            string `json:"csvUrl"`
}
