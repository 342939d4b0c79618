// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	email    string
	password string
	role     models.Role
}

type seedService struct {
	userRepository store.UserRepository
	accounts       []seedAccount
	bcryptCost     int

	now func() time.Time

	logger *logger.Logger
}

// NewSeedService returns a SeedService for the admin and user accounts named
// in seedCfg.
func NewSeedService(userRepository store.UserRepository, seedCfg config.Seed, appCfg config.App, logger *logger.Logger) SeedService {
	return &seedService{
		userRepository: userRepository,
		accounts: []seedAccount{
			{email: seedCfg.AdminEmail, password: seedCfg.AdminPassword, role: models.RoleAdmin},
			{email: seedCfg.UserEmail, password: seedCfg.UserPassword, role: models.RoleUser},
		},
		bcryptCost: appCfg.BcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Seed creates each configured account unless its email already exists.
// Accounts without an email or password are skipped with a warning. Running
// Seed any number of times leaves exactly one row per email.
func (s *seedService) Seed(ctx context.Context) error {
	for _, account := range s.accounts {
		log := s.logger.With().Str("email", account.email).Str("role", string(account.role)).Logger()

		if account.email == "" || account.password == "" {
			log.Warn().Msg("seed account has no email or password configured, skipping")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}

		now := s.now()
		_, err = s.userRepository.CreateUser(ctx, models.User{
			Email:        account.email,
			PasswordHash: string(hash),
			Role:         account.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Msg("seed account already exists")
		case err != nil:
			return fmt.Errorf("seeding %s account failed: %w", account.role, err)
		default:
			log.Info().Msg("seed account created")
		}
	}

	return nil
}
