// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
)

type directoryProvisioner struct {
	perm os.FileMode
}

// NewDirectoryProvisioner returns a [DirectoryProvisioner] creating
// directories with mode 0750.
func NewDirectoryProvisioner() DirectoryProvisioner {
	return &directoryProvisioner{perm: 0o750}
}

func (d *directoryProvisioner) EnsureDirectories(paths ...string) error {
	created := make([]string, 0, len(paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil {
			if !info.IsDir() {
				return errors.Join(fmt.Errorf("%s exists and is not a directory", path), rollback(created))
			}
			continue
		}

		if err = os.MkdirAll(path, d.perm); err != nil {
			return errors.Join(fmt.Errorf("failed to create directory %s: %w", path, err), rollback(created))
		}
		created = append(created, path)
	}

	return nil
}

// rollback removes directories in reverse creation order.
func rollback(created []string) error {
	var errs []error
	for i := len(created) - 1; i >= 0; i-- {
		if err := os.RemoveAll(created[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
