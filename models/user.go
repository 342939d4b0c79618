// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role is the authorization level of an account.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to admin-gated routes.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered sanctuary account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is used as the token subject.
	UserID int64 `json:"-"`

	// Email is the unique identity key of the account.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the password.
	// The cleartext password is never stored.
	PasswordHash string `json:"-"`

	// Role is either "user" or "admin".
	Role Role `json:"role"`

	// DisplayName is optional; see [User.PublicName].
	DisplayName string `json:"displayName,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last email/password change.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicName returns the display name or, if it is empty, the local part of
// the email address.
func (u User) PublicName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}

	localPart, _, _ := strings.Cut(u.Email, "@")
	return localPart
}

// Profile is the public view of a user returned by the profile endpoint.
type Profile struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// ProfileUpdate carries a profile change request for the authenticated user.
type ProfileUpdate struct {
	// UserID is resolved from the token, never from the request body.
	UserID int64 `json:"-"`

	// Email is always written.
	Email string `json:"email"`

	// CurrentPassword must match the stored hash before anything changes.
	CurrentPassword string `json:"currentPassword"`

	// NewPassword is optional; empty keeps the current password.
	NewPassword string `json:"newPassword,omitempty"`
}
