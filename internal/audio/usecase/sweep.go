package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"voice-assistant/internal/audio"
)

// Sweep deletes artifacts whose name timestamp is more than the retention
// window before now.
func (uc *implUseCase) Sweep(ctx context.Context, now time.Time) (audio.SweepOutput, error) {
	ctx, span := tracer.Start(ctx, "audio.Sweep")
	defer span.End()

	names, err := uc.storage.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "audio.usecase.Sweep: list: %v", err)
		return audio.SweepOutput{}, fmt.Errorf("list artifacts: %w", err)
	}

	var out audio.SweepOutput
	for _, name := range names {
		if !strings.HasSuffix(name, audio.Extension) {
			continue
		}
		a, ok := audio.ParseFileName(name)
		if !ok {
			out.Skipped++
			uc.l.Debugf(ctx, "audio.usecase.Sweep: skip unparsable %s", name)
			continue
		}
		if !a.Expired(now, uc.retention) {
			out.Kept++
			continue
		}
		if err := uc.storage.Remove(ctx, name); err != nil {
			out.Skipped++
			uc.l.Warnf(ctx, "audio.usecase.Sweep: remove %s: %v", name, err)
			continue
		}
		out.Deleted++
	}

	uc.metrics.AddAudioSwept(out.Deleted)
	span.SetAttributes(
		attribute.Int("audio.deleted", out.Deleted),
		attribute.Int("audio.skipped", out.Skipped),
		attribute.Int("audio.kept", out.Kept),
	)
	uc.l.Infof(ctx, "audio.usecase.Sweep: deleted=%d skipped=%d kept=%d", out.Deleted, out.Skipped, out.Kept)
	return out, nil
}
