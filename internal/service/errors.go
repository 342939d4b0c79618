// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validator failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWrongPassword is returned by UpdateProfile when the current
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbidden is returned by Authorize when the token role is not the
	// required one.
	ErrForbidden = errors.New("forbidden")

	ErrPasswordHashing = errors.New("password hashing failed")
)
