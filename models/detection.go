// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// ImageUpload is a single image received by the upload proxy.
type ImageUpload struct {
	// Filename is the client-side file name; only its extension is reused.
	Filename string

	// ContentType is the MIME type declared by the client (image/*).
	ContentType string

	// Size is the declared size in bytes.
	Size int64

	// Content streams the file body.
	Content io.Reader
}

// Detection is what the external detection service reports for an
// annotated image.
type Detection struct {
	// ImagePath identifies the annotated image.
	ImagePath string `json:"image_path"`

	// CSVPath identifies the extracted-data CSV file.
	CSVPath string `json:"csv_path"`
}
