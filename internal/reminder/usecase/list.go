package usecase

import (
	"context"

	"voice-assistant/internal/reminder"
)

// List returns the collection in creation order.
func (uc *implUseCase) List(ctx context.Context) (reminder.ListOutput, error) {
	ctx, span := tracer.Start(ctx, "reminder.List")
	defer span.End()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return reminder.ListOutput{Reminders: uc.loadOrEmpty(ctx)}, nil
}
