// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
)

// transientFileStorage is the local filesystem implementation of
// [TransientFileStorage]. All files live directly inside dir.
type transientFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewTransientFileStorage creates dir if it does not exist and returns a
// storage rooted at it.
func NewTransientFileStorage(dir string, logger *logger.Logger) (TransientFileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating transient file storage")
	return &transientFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save streams content into a new file. A partially written file is removed.
func (t *transientFileStorage) Save(ctx context.Context, name string, content io.Reader) (int64, error) {
	path, err := t.path(name)
	if err != nil {
		return 0, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %s: %w", name, err)
	}

	n, err := io.Copy(file, content)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		logger.FromContext(ctx).Err(err).Str("func", "transientFileStorage.Save").Str("file", name).Msg("failed to write file")
		return 0, fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return n, nil
}

func (t *transientFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := t.path(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTransientFileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", name, err)
	}

	return file, nil
}

func (t *transientFileStorage) Delete(ctx context.Context, name string) error {
	path, err := t.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}

	return nil
}

// Sweep deletes regular files in dir modified before olderThan. Files that
// cannot be removed are logged and skipped.
func (t *transientFileStorage) Sweep(ctx context.Context, olderThan time.Time) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}

		if err := os.Remove(filepath.Join(t.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("failed to remove stale transient file")
			continue
		}
		removed++
	}

	return removed, nil
}

// path resolves name inside dir, rejecting anything that is not a plain
// file name.
func (t *transientFileStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	return filepath.Join(t.dir, name), nil
}
