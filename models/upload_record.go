// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// ImageDataURIPrefix prefixes the base64 image payload in list responses.
	ImageDataURIPrefix = "data:image/jpeg;base64,"

	// CSVDataURIPrefix prefixes the base64 CSV payload in list responses.
	CSVDataURIPrefix = "data:text/csv;base64,"
)

// UploadRecord is a stored pairing of an annotated image and the CSV data
// extracted from it. Both payloads are kept base64-encoded.
// Records are immutable after creation.
type UploadRecord struct {
	RecordID int64 `json:"id"`

	ImageFilename string `json:"image_filename"`
	ImageData     string `json:"image_data"`
	CSVFilename   string `json:"csv_filename"`
	CSVData       string `json:"csv_data"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the UploadRecord model.
func (r UploadRecord) TableName() string {
	return "upload_records"
}

// UploadRecordView is an [UploadRecord] with both payloads re-expressed as
// data URIs ready for client rendering.
type UploadRecordView struct {
	UploadRecord

	ImageURL string `json:"imageUrl"`
	CSVURL   string `json:"csvUrl"`
}

// NewUploadRecordView builds the data-URI view of record.
func NewUploadRecordView(record UploadRecord) UploadRecordView {
	return UploadRecordView{
		UploadRecord: record,
		ImageURL:     ImageDataURIPrefix + record.ImageData,
		CSVURL:       CSVDataURIPrefix + record.CSVData,
	}
}
