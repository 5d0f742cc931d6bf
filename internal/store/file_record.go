// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/models"
)

const recordFileExt = ".json"

// fileRecordRepository keeps every record as <dir>/<key>.json.
type fileRecordRepository struct {
	dir    string
	logger *logger.Logger
}

// NewFileRecordRepository returns a [RecordRepository] storing each record
// in its own file inside dir. The directory is created on first write.
func NewFileRecordRepository(dir string, logger *logger.Logger) RecordRepository {
	return &fileRecordRepository{
		dir:    dir,
		logger: logger,
	}
}

func (f *fileRecordRepository) PutRecord(ctx context.Context, key string, kind models.RecordKind, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := f.path(key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(f.dir, 0o750); err != nil {
		f.logger.Err(err).Str("func", "fileRecordRepository.PutRecord").Str("dir", f.dir).Msg("failed to create record directory")
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	// write-then-rename keeps the previous record intact on failure
	tmp, err := os.CreateTemp(f.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp record (key=%s): %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write record (key=%s): %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close record (key=%s): %w", key, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		f.logger.Err(err).
			Str("func", "fileRecordRepository.PutRecord").
			Str("key", key).
			Str("kind", string(kind)).
			Msg("failed to move record into place")
		return fmt.Errorf("failed to save record (key=%s): %w", key, err)
	}

	return nil
}

func (f *fileRecordRepository) GetRecord(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := f.path(key)
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: key=%s", ErrRecordNotFound, key)
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileRecordRepository.GetRecord").Str("key", key).Msg("failed to read record")
		return nil, fmt.Errorf("failed to read record (key=%s): %w", key, err)
	}

	return payload, nil
}

func (f *fileRecordRepository) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid record key %q", key)
	}
	return filepath.Join(f.dir, key+recordFileExt), nil
}
