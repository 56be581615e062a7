package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"voice-assistant/internal/reminder/repository"
	"voice-assistant/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a JSON file backed Repository at path. The parent directory is
// created if needed, and an empty collection is written when the file is absent.
func New(ctx context.Context, path string, l log.Logger) (*implRepository, error) {
	if path == "" {
		return nil, errors.New("reminder/repository/file: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create reminders dir: %w", err)
	}

	r := &implRepository{path: path, l: l}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := r.Save(ctx, nil); err != nil {
			return nil, err
		}
		l.Infof(ctx, "%s: created empty reminders file at %s", r.dsn("New"), path)
	}
	return r, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reminder/repository/file.%s", method)
}
