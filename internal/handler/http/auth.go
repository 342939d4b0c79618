// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

var credentialsErrorMappings = []errorMapping{
	{validators.ErrEmptyEmail, http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
	{validators.ErrInvalidRole, http.StatusBadRequest, app.MsgInvalidRole},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidEmailOrPassword},
}

var profileUpdateErrorMappings = []errorMapping{
	{validators.ErrEmptyEmail, http.StatusBadRequest, app.MsgProfileFieldsRequired},
	{validators.ErrEmptyCurrentPassword, http.StatusBadRequest, app.MsgProfileFieldsRequired},
	{service.ErrWrongPassword, http.StatusBadRequest, app.MsgCurrentPasswordWrong},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailInUse},
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError, credentialsErrorMappings...)
		return
	}

	h.writeToken(w, r, registeredUser, app.MsgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError, credentialsErrorMappings...)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser, app.MsgLoginSuccessful, http.StatusOK)
}

// writeToken issues a token for user and writes it both in the body and in
// the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, models.TokenResponse{Message: message, Token: token.SignedString}, status)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoTokenInContext, app.MsgInternalServerError)
		return
	}

	profile, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoTokenInContext, app.MsgInternalServerError)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}
	update.UserID = userID

	if err := h.services.AuthService.UpdateProfile(ctx, update); err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError, profileUpdateErrorMappings...)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProfileUpdated}, http.StatusOK)
}

func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgWelcomeAdmin}, http.StatusOK)
}
