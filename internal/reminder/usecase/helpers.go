package usecase

import (
	"context"

	"voice-assistant/internal/model"
)

// loadOrEmpty reads the collection; unreadable or malformed state counts as empty.
func (uc *implUseCase) loadOrEmpty(ctx context.Context) []model.Reminder {
	reminders, err := uc.repo.Load(ctx)
	if err != nil {
		uc.metrics.IncReminderStoreError("read")
		uc.l.Warnf(ctx, "reminder.usecase: load failed, treating as empty: %v", err)
		return nil
	}
	for _, r := range reminders {
		if !r.HasTime() {
			uc.l.Warnf(ctx, "reminder.usecase: reminder %q has unparsed time %q", r.Text, r.TimeText())
		}
	}
	return reminders
}
