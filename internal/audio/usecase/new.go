package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"voice-assistant/internal/audio"
	"voice-assistant/internal/audio/repository"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

const (
	DefaultRetention = time.Hour
	DefaultURLPrefix = "/static/audio"
)

var tracer = otel.Tracer("voice-assistant/internal/audio")

// ProbeFunc validates encoded audio and reports its playing time.
type ProbeFunc func(data []byte) (time.Duration, error)

type implUseCase struct {
	storage     repository.Storage
	synthesizer audio.Synthesizer
	recognizer  audio.Recognizer
	l           log.Logger
	metrics     *metrics.Metrics
	retention   time.Duration
	urlPrefix   string
	now         func() time.Time
	newID       func() string
	probe       ProbeFunc
}

var _ audio.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithSynthesizer sets the text-to-speech backend used by Speak.
func WithSynthesizer(s audio.Synthesizer) Option {
	return func(uc *implUseCase) { uc.synthesizer = s }
}

// WithRecognizer sets the speech-to-text backend used by Transcribe.
func WithRecognizer(r audio.Recognizer) Option {
	return func(uc *implUseCase) { uc.recognizer = r }
}

// WithRetention sets how long artifacts are kept. Non-positive values are ignored.
func WithRetention(d time.Duration) Option {
	return func(uc *implUseCase) {
		if d > 0 {
			uc.retention = d
		}
	}
}

// WithURLPrefix sets the path under which the storage directory is served.
func WithURLPrefix(prefix string) Option {
	return func(uc *implUseCase) {
		if prefix != "" {
			uc.urlPrefix = prefix
		}
	}
}

// WithClock overrides the time source for artifact names and sweeps.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithMetrics sets the collector for synthesis and sweep counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *implUseCase) { uc.metrics = m }
}

// WithProbe replaces the MP3 decoder used to validate synthesized audio.
func WithProbe(p ProbeFunc) Option {
	return func(uc *implUseCase) { uc.probe = p }
}

// New creates the audio UseCase over storage.
func New(storage repository.Storage, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		storage:   storage,
		l:         l,
		retention: DefaultRetention,
		urlPrefix: DefaultURLPrefix,
		now:       time.Now,
		newID:     func() string { return uuid.NewString()[:8] },
		probe:     ProbeMP3,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
