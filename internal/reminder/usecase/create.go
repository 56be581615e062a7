package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder"
)

// Create appends a reminder stamped with the current time and persists the
// whole collection.
func (uc *implUseCase) Create(ctx context.Context, input reminder.CreateInput) (reminder.CreateOutput, error) {
	ctx, span := tracer.Start(ctx, "reminder.Create")
	defer span.End()

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return reminder.CreateOutput{}, reminder.ErrEmptyText
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.loadOrEmpty(ctx)
	rec := model.NewReminder(text, uc.now())

	next := make([]model.Reminder, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, rec)

	if err := uc.repo.Save(ctx, next); err != nil {
		uc.metrics.IncReminderStoreError("write")
		uc.l.Errorf(ctx, "reminder.usecase.Create: save: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return reminder.CreateOutput{}, fmt.Errorf("%w: %v", reminder.ErrStoreWrite, err)
	}

	uc.metrics.IncReminderCreated()
	span.SetAttributes(attribute.Int("reminders.count", len(next)))
	uc.l.Infof(ctx, "reminder.usecase.Create: stored reminder %q", rec.Text)
	return reminder.CreateOutput{Reminder: rec}, nil
}
