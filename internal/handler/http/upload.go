// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

const (
	uploadFormField = "file"

	// multipartOverhead is allowed on top of the file size for boundaries,
	// part headers and other form fields.
	multipartOverhead = 1 << 20
)

var uploadErrorMappings = []errorMapping{
	{validators.ErrNoFile, http.StatusBadRequest, app.MsgNoFileUploaded},
	{validators.ErrNotAnImage, http.StatusBadRequest, app.MsgNotAnImage},
	{validators.ErrFileTooLarge, http.StatusBadRequest, app.MsgFileTooLarge},
}

// upload forwards the image in the "file" part to the detection service and
// returns where the annotated image and the CSV ended up.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			err = validators.ErrFileTooLarge
		} else {
			err = errors.Join(validators.ErrNoFile, err)
		}
		h.writeError(w, r, err, app.MsgUploadProcessingFailed, uploadErrorMappings...)
		return
	}
	defer file.Close()
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	detection, err := h.services.DetectionService.Process(r.Context(), models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		h.writeError(w, r, err, app.MsgUploadProcessingFailed, uploadErrorMappings...)
		return
	}

	_, _ = utils.WriteJSON(w, models.UploadResponse{
		Message:           app.MsgImageProcessed,
		AnnotatedImageURL: detection.ImagePath,
		CSVURL:            detection.CSVPath,
	}, http.StatusOK)
}
