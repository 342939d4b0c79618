// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"slices"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/adapter"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
)

// errorMapping pairs an error with the status and message sent to the client.
type errorMapping struct {
	target  error
	status  int
	message string
}

// commonErrorMappings apply to every route after the route's own mappings.
// Order matters: the first matching entry wins.
var commonErrorMappings = []errorMapping{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenMissing},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgTokenMissing},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenInvalid},
	{ErrNoTokenInContext, http.StatusUnauthorized, app.MsgTokenMissing},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenExpired},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgTokenInvalid},
	{service.ErrForbidden, http.StatusForbidden, app.MsgForbiddenNotAdmin},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrNoUploadRecords, http.StatusNotFound, app.MsgNoDataFound},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyExists},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

// writeError maps err to a JSON error response.
//
// Route mappings are tried first, then commonErrorMappings. Detection
// service failures answer 500 with the upstream payload as details. Anything
// else answers 500 with fallback; the error text is attached as details in
// development deployments only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string, mappings ...errorMapping) {
	log := logger.FromRequest(r)

	for _, m := range slices.Concat(mappings, commonErrorMappings) {
		if errors.Is(err, m.target) {
			log.Debug().Err(err).Int("status", m.status).Msg(m.message)
			utils.WriteError(w, m.status, m.message, nil)
			return
		}
	}

	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Err(err).Int("upstream_status", upstreamErr.StatusCode).Msg("detection service call failed")
		utils.WriteError(w, http.StatusInternalServerError, fallback, upstreamErr.Payload)
		return
	}

	log.Err(err).Msg(fallback)
	utils.WriteError(w, http.StatusInternalServerError, fallback, h.errorDetails(err))
}

func (h *Handler) errorDetails(err error) any {
	if !h.exposeErrorDetails {
		return nil
	}
	return err.Error()
}
