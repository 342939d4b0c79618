// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

// multipartField is the form field name the detection service reads.
const multipartField = "file"

type httpDetector struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPDetector constructs an HTTP implementation of [Detector] posting to
// cfg.DetectorURL with a cfg.RequestTimeout deadline per call.
//
// Returns an error if the URL is empty or is not an absolute http(s) URL.
func NewHTTPDetector(cfg config.Adapter, logger *logger.Logger) (Detector, error) {
	detectorURL, err := normalizeURL(cfg.DetectorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid detector url: %w", err)
	}

	logger.Debug().Str("url", detectorURL).Dur("timeout", cfg.RequestTimeout).Msg("creating detector adapter")
	return &httpDetector{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		url:    detectorURL,
		logger: logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyDetectorURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return u.String(), nil
}

// Detect implements [Detector].
func (h *httpDetector) Detect(ctx context.Context, filename, contentType string, content io.Reader) (models.Detection, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField(multipartField, filename, contentType, content).
		Post(h.url)
	if err != nil {
		log.Err(err).Str("func", "httpDetector.Detect").Str("file", filename).Msg("detection request failed")
		return models.Detection{}, &UpstreamError{Payload: err.Error(), Err: err}
	}

	if err := mapHTTPError(resp); err != nil {
		log.Error().
			Str("func", "httpDetector.Detect").
			Int("status", resp.StatusCode()).
			Str("file", filename).
			Msg("detection service returned an error")
		return models.Detection{}, err
	}

	var detection models.Detection
	if err := json.Unmarshal(resp.Body(), &detection); err != nil {
		log.Err(err).Str("func", "httpDetector.Detect").Msg("failed to decode detection response")
		return models.Detection{}, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Payload:    decodePayload(resp.Body(), resp.StatusCode()),
			Err:        err,
		}
	}

	log.Debug().Str("func", "httpDetector.Detect").Str("image_path", detection.ImagePath).Msg("image processed by detector")
	return detection, nil
}
