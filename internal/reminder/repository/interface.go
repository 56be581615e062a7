package repository

import (
	"context"

	"voice-assistant/internal/model"
)

// Repository persists the reminder collection as a single unit.
// Load returns the whole collection; Save replaces it entirely.
type Repository interface {
	Load(ctx context.Context) ([]model.Reminder, error)
	Save(ctx context.Context, reminders []model.Reminder) error
}
