// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrDetectionFailed is wrapped by every error returned from [Detector.Detect].
	ErrDetectionFailed = errors.New("detection service call failed")

	// ErrEmptyDetectorURL is returned by [NewHTTPDetector] without a URL.
	ErrEmptyDetectorURL = errors.New("empty detector url")
)

// UpstreamError describes a failed detection call.
//
// StatusCode is zero when no response was received (timeout, refused
// connection). Payload holds the decoded JSON error body of the detection
// service, its raw text, or the transport error message.
type UpstreamError struct {
	StatusCode int
	Payload    any
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", ErrDetectionFailed, e.Err)
	}
	return fmt.Sprintf("%s: upstream responded %d: %v", ErrDetectionFailed, e.StatusCode, e.Payload)
}

// Unwrap exposes both [ErrDetectionFailed] and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDetectionFailed}
	}
	return []error{ErrDetectionFailed, e.Err}
}
