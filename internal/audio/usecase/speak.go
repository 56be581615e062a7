package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.opentelemetry.io/otel/codes"

	"voice-assistant/internal/audio"
)

// Speak synthesizes input.Text, validates the MP3 and stores it as a new artifact.
func (uc *implUseCase) Speak(ctx context.Context, input audio.SpeakInput) (audio.SpeakOutput, error) {
	ctx, span := tracer.Start(ctx, "audio.Speak")
	defer span.End()

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return audio.SpeakOutput{}, audio.ErrEmptyText
	}
	if uc.synthesizer == nil {
		return audio.SpeakOutput{}, audio.ErrNoSynthesizer
	}

	data, err := uc.synthesizer.Synthesize(ctx, text)
	if err != nil {
		uc.metrics.IncCollaboratorError("tts")
		span.RecordError(err)
		span.SetStatus(codes.Error, "synthesize failed")
		return audio.SpeakOutput{}, fmt.Errorf("%w: %v", audio.ErrSynthesis, err)
	}

	duration, err := uc.probe(data)
	if err != nil {
		span.RecordError(err)
		return audio.SpeakOutput{}, fmt.Errorf("%w: %v", audio.ErrInvalidAudio, err)
	}

	artifact := audio.Artifact{ID: uc.newID(), CreatedAt: uc.now()}
	name := artifact.FileName()
	if err := uc.storage.Write(ctx, name, data); err != nil {
		uc.l.Errorf(ctx, "audio.usecase.Speak: write %s: %v", name, err)
		return audio.SpeakOutput{}, fmt.Errorf("store artifact: %w", err)
	}

	uc.metrics.IncAudioSynthesized()
	return audio.SpeakOutput{
		Artifact: artifact,
		URL:      path.Join(uc.urlPrefix, name),
		Duration: duration,
	}, nil
}
