package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-assistant/internal/audio"
)

func (uc *implUseCase) Transcribe(ctx context.Context, data []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "audio.Transcribe")
	defer span.End()

	if len(data) == 0 {
		return "", audio.ErrEmptyAudio
	}
	if uc.recognizer == nil {
		return "", audio.ErrNoRecognizer
	}

	uc.l.Infof(ctx, "audio.usecase.Transcribe: %d bytes", len(data))
	text, err := uc.recognizer.Recognize(ctx, data)
	if err != nil {
		uc.metrics.IncCollaboratorError("stt")
		span.RecordError(err)
		return "", fmt.Errorf("%w: %v", audio.ErrRecognition, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		uc.l.Warnf(ctx, "audio.usecase.Transcribe: speech not understood")
		return "", audio.ErrNotUnderstood
	}
	return text, nil
}
