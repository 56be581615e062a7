package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"voice-assistant/internal/command"
	"voice-assistant/internal/intent"
	"voice-assistant/pkg/textnorm"
)

// Handle normalizes, classifies and dispatches one utterance.
func (uc *implUseCase) Handle(ctx context.Context, input command.HandleInput) (command.HandleOutput, error) {
	if err := ctx.Err(); err != nil {
		return command.HandleOutput{}, err
	}

	ctx, span := tracer.Start(ctx, "command.Handle",
		trace.WithAttributes(attribute.Int("input.length", len(input.Text))))
	defer span.End()

	text := textnorm.Normalize(input.Text)
	if text == "" {
		uc.metrics.IncCommand(string(intent.IntentUnknown))
		return command.HandleOutput{Intent: intent.IntentUnknown, Response: ResponseEmpty}, nil
	}

	classified := uc.classifier.Classify(text)
	span.SetAttributes(
		attribute.String("intent", string(classified.Intent)),
		attribute.String("intent.keyword", classified.Keyword),
	)
	uc.metrics.IncCommand(string(classified.Intent))
	uc.l.Debugf(ctx, "command.usecase.Handle: intent=%s keyword=%q", classified.Intent, classified.Keyword)

	h, ok := uc.handlers[classified.Intent]
	if !ok {
		h = uc.handleUnknown
	}
	response, rec := h(ctx, text)

	return command.HandleOutput{
		Intent:   classified.Intent,
		Response: response,
		Reminder: rec,
	}, nil
}
