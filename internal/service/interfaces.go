// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business rules of the sanctuary backend:
// accounts and session tokens, stored upload records, the detection proxy
// and bootstrap seeding.
package service

import (
	"context"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles accounts, credentials and session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	Authorize(ctx context.Context, token models.Token, required models.Role) error
}

// UploadRecordService stores and lists annotated image + CSV records.
type UploadRecordService interface {
	Save(ctx context.Context, record models.UploadRecord) (models.UploadRecord, error)
	List(ctx context.Context) ([]models.UploadRecordView, error)

	// ImportFiles reads an annotated image and its CSV from disk and saves
	// them base64-encoded as a new record.
	ImportFiles(ctx context.Context, imagePath, csvPath string) (models.UploadRecord, error)
}

// DetectionService proxies uploaded images to the detection service.
type DetectionService interface {
	Process(ctx context.Context, upload models.ImageUpload) (models.Detection, error)
}

// SeedService ensures the bootstrap accounts exist.
type SeedService interface {
	Seed(ctx context.Context) error
}
