package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder/repository"
)

// Load reads the whole collection. A missing file is an empty collection.
func (r *implRepository) Load(ctx context.Context) ([]model.Reminder, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}

	var reminders []model.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	return reminders, nil
}

// Save overwrites the file with the full collection. Content is written to a
// temp file in the same directory and renamed into place, so readers see
// either the old or the new collection.
func (r *implRepository) Save(ctx context.Context, reminders []model.Reminder) error {
	if reminders == nil {
		reminders = []model.Reminder{}
	}

	data, err := json.MarshalIndent(reminders, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".reminders-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		r.l.Errorf(ctx, "%s: rename %s: %v", r.dsn("Save"), r.path, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	return nil
}
