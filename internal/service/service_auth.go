// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, profile changes and
// JWT token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	validator validators.Validator

	// bcryptCost is the work factor of newly created password hashes.
	bcryptCost int

	// dummyHash is compared against when the email is unknown so that
	// Login costs the same for unknown accounts and wrong passwords.
	dummyHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the service clock; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("wildlife-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}, nil
}

// RegisterUser creates a new account with the given email, password and
// optional role (default [models.RoleUser]).
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping the validator error.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	role := credentials.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	now := a.now()
	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        strings.TrimSpace(credentials.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("role", string(role)).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both return ErrInvalidCredentials and
// both run one bcrypt comparison.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(credentials.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		log.Debug().Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user carrying its ID and
// role, issued now and expiring after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other failure (bad
// signature, wrong issuer, malformed) yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// GetProfile returns the public view of the account.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.Profile{
		Email:       user.Email,
		DisplayName: user.PublicName(),
		Role:        user.Role,
	}, nil
}

// UpdateProfile changes the email and, if given, the password of the account
// after verifying the current password.
//
// The write is conditional on the hash that was verified, so a password
// changed in between makes the update fail with ErrWrongPassword and leaves
// the record untouched. Tokens issued earlier stay valid until they expire.
func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx).WithUserID(update.UserID)

	if err := a.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("invalid profile update provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, update.UserID)
	if err != nil {
		return fmt.Errorf("profile lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(update.CurrentPassword)); err != nil {
		log.Debug().Msg("current password mismatch")
		return ErrWrongPassword
	}

	verifiedHash := user.PasswordHash
	if update.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), a.bcryptCost)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		user.PasswordHash = string(hash)
	}
	user.Email = strings.TrimSpace(update.Email)
	user.UpdatedAt = a.now()

	err = a.userRepository.UpdateCredentials(ctx, user, verifiedHash)
	if errors.Is(err, store.ErrCredentialsChanged) {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().Bool("password_changed", update.NewPassword != "").Msg("profile updated")
	return nil
}

// Authorize checks the role claim of a verified token.
func (a *authService) Authorize(ctx context.Context, token models.Token, required models.Role) error {
	if token.Role != required {
		logger.FromContext(ctx).Debug().
			Int64("user_id", token.UserID).
			Str("role", string(token.Role)).
			Str("required", string(required)).
			Msg("role check failed")
		return ErrForbidden
	}

	return nil
}
