// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sanctuary server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

// Success messages.
const (
	MsgServerIsRunning = "Server is running"
	MsgUserRegistered  = "User registered successfully"
	MsgLoginSuccessful = "Login successful"
	MsgProfileUpdated  = "Profile updated successfully"
	MsgWelcomeAdmin    = "Welcome, Admin!"
	MsgImageProcessed  = "Image processed successfully"
)

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgEmailAndPasswordRequired is returned by registration and login
	// when either field is blank.
	MsgEmailAndPasswordRequired = "Email and password are required"

	// MsgInvalidRole is returned when registration names a role other than
	// "user" or "admin".
	MsgInvalidRole = "Invalid role"

	// MsgUserAlreadyExists is returned when a registration or email change
	// collides with an existing account.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidEmailOrPassword is returned for unknown email and wrong
	// password alike.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	MsgTokenMissing = "Unauthorized, token missing"
	MsgTokenInvalid = "Invalid token"
	MsgTokenExpired = "Token expired"

	MsgUserNotFound = "User not found"

	// MsgEmailInUse is returned when a profile update picks an email that
	// belongs to another account.
	MsgEmailInUse = "Email already in use"

	// MsgForbiddenNotAdmin is returned by the admin route for a valid token
	// whose role is not admin.
	MsgForbiddenNotAdmin = "Forbidden, not an admin"

	MsgProfileFieldsRequired  = "Email and current password are required"
	MsgCurrentPasswordWrong   = "Current password is incorrect"
	MsgNoFileUploaded         = "No file uploaded"
	MsgNotAnImage             = "Not an image! Please upload an image."
	MsgFileTooLarge           = "File too large"
	MsgUploadProcessingFailed = "Server error during file upload or processing"
	MsgAllFieldsRequired      = "All fields are required"
	MsgNoDataFound            = "No data found"
	MsgInternalServerError    = "Server error"
	MsgRouteNotFound          = "Route not found"
	MsgMethodNotAllowed       = "Method not allowed"
)
