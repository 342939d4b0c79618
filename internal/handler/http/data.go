// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

var saveDataErrorMappings = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgAllFieldsRequired},
}

// listData returns every upload record, newest first, with data URIs.
func (h *Handler) listData(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.UploadRecordService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) saveData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.UploadRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	saved, err := h.services.UploadRecordService.Save(r.Context(), record)
	if err != nil {
		h.writeError(w, r, err, app.MsgInternalServerError, saveDataErrorMappings...)
		return
	}

	_, _ = utils.WriteJSON(w, saved, http.StatusCreated)
}
