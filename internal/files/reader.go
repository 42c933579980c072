// SPDX-License-Identifier: AGPL-3.0-or-later

package files

import (
	"context"
	"fmt"
	"os"
)

// Reader reads text files.
type Reader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// OSReader reads from the local filesystem.
type OSReader struct{}

func (OSReader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the project preferences
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
