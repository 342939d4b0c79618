// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
)

const (
	annotatedPrefix = "annotated_"
	csvPrefix       = "data_"
	importedDir     = "imported"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// Importer polls a directory for detection output pairs
// (annotated_<name>.<image ext> and data_<name>.csv), stores each complete
// pair as an upload record and moves both files into the imported/
// subdirectory. An image whose CSV has not appeared yet is retried on the
// next poll.
type Importer struct {
	records  service.UploadRecordService
	dir      string
	interval time.Duration

	logger *logger.Logger
}

func NewImporter(records service.UploadRecordService, dir string, interval time.Duration, logger *logger.Logger) *Importer {
	return &Importer{
		records:  records,
		dir:      dir,
		interval: interval,
		logger:   logger,
	}
}

func (i *Importer) Run(ctx context.Context) {
	i.logger.Info().Str("dir", i.dir).Dur("interval", i.interval).Msg("importer started")

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		if _, err := i.ImportPending(ctx); err != nil {
			i.logger.Err(err).Msg("import pass failed")
		}

		select {
		case <-ctx.Done():
			i.logger.Info().Msg("importer stopped")
			return
		case <-ticker.C:
		}
	}
}

// ImportPending imports every complete pair currently in the directory and
// returns how many were stored. A pair that fails to import stays in place.
func (i *Importer) ImportPending(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		return 0, fmt.Errorf("reading import dir: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return imported, ctx.Err()
		}

		imageName := entry.Name()
		csvName, ok := pairedCSVName(imageName)
		if !ok || !entry.Type().IsRegular() {
			continue
		}

		imagePath := filepath.Join(i.dir, imageName)
		csvPath := filepath.Join(i.dir, csvName)
		log := i.logger.With().Str("image", imageName).Str("csv", csvName).Logger()

		if _, err := os.Stat(csvPath); err != nil {
			log.Debug().Msg("csv not present yet")
			continue
		}

		record, err := i.records.ImportFiles(ctx, imagePath, csvPath)
		if err != nil {
			log.Err(err).Msg("import failed")
			continue
		}

		if err := i.moveToImported(imageName, csvName); err != nil {
			log.Err(err).Msg("imported files could not be moved")
		}

		log.Info().Int64("record_id", record.RecordID).Msg("detection output imported")
		imported++
	}

	return imported, nil
}

func (i *Importer) moveToImported(names ...string) error {
	target := filepath.Join(i.dir, importedDir)
	if err := os.MkdirAll(target, 0o750); err != nil {
		return err
	}

	for _, name := range names {
		if err := os.Rename(filepath.Join(i.dir, name), filepath.Join(target, name)); err != nil {
			return err
		}
	}
	return nil
}

// pairedCSVName maps annotated_<name>.<image ext> to data_<name>.csv.
func pairedCSVName(imageName string) (string, bool) {
	if !strings.HasPrefix(imageName, annotatedPrefix) {
		return "", false
	}

	ext := filepath.Ext(imageName)
	if _, ok := imageExtensions[strings.ToLower(ext)]; !ok {
		return "", false
	}

	base := strings.TrimSuffix(strings.TrimPrefix(imageName, annotatedPrefix), ext)
	if base == "" {
		return "", false
	}

	return csvPrefix + base + ".csv", true
}
