// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*UpstreamError]
// carrying the response payload otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Payload:    decodePayload(resp.Body(), resp.StatusCode()),
	}
}

// decodePayload keeps JSON bodies structured and falls back to trimmed text,
// or the status text for an empty body.
func decodePayload(body []byte, statusCode int) any {
	var payload any
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		return payload
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(statusCode)
	}
	return text
}
