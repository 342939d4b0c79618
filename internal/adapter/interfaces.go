// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the sanctuary
// backend depends on.
//
// The primary abstraction is [Detector], which forwards a single image to the
// species/text detection service and reports where the annotated image and
// the extracted CSV were written. The package ships an HTTP implementation
// ([NewHTTPDetector]) built on resty.
//
// Failures are reported as [*UpstreamError] values that wrap
// [ErrDetectionFailed], so callers can match with [errors.Is] and still reach
// the upstream payload with [errors.As].
package adapter

import (
	"context"
	"io"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/detector_mock.go -package=mock

// Detector forwards images to the detection service.
type Detector interface {
	// Detect uploads content as the multipart field "file" and returns the
	// detection result. The call is bounded by the configured timeout and
	// is never retried.
	Detect(ctx context.Context, filename, contentType string, content io.Reader) (models.Detection, error)
}
