package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder/repository"
)

const (
	loadQuery = `SELECT items FROM voice_reminders WHERE id = $1`
	saveQuery = `
		INSERT INTO voice_reminders (id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()`
)

// Load returns the stored collection. A missing row is an empty collection.
func (r *implRepository) Load(ctx context.Context) ([]model.Reminder, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, loadQuery, collectionID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}

	var reminders []model.Reminder
	if err := json.Unmarshal(raw, &reminders); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	return reminders, nil
}

// Save upserts the full collection.
func (r *implRepository) Save(ctx context.Context, reminders []model.Reminder) error {
	if reminders == nil {
		reminders = []model.Reminder{}
	}
	raw, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}

	if _, err := r.db.ExecContext(ctx, saveQuery, collectionID, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToWrite, err)
	}
	return nil
}
