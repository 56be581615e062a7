package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"

	"voice-assistant/internal/reminder"
)

// Clear persists an empty collection.
func (uc *implUseCase) Clear(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "reminder.Clear")
	defer span.End()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Save(ctx, nil); err != nil {
		uc.metrics.IncReminderStoreError("write")
		uc.l.Errorf(ctx, "reminder.usecase.Clear: save: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return fmt.Errorf("%w: %v", reminder.ErrStoreWrite, err)
	}
	uc.l.Infof(ctx, "reminder.usecase.Clear: all reminders cleared")
	return nil
}
