// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the registration and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is honoured only on registration; empty means [RoleUser].
	Role Role `json:"role,omitempty"`
}
