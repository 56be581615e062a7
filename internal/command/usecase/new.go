package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"voice-assistant/internal/command"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

var tracer = otel.Tracer("voice-assistant/internal/command")

// handlerFunc answers a classified utterance. text is already normalized.
type handlerFunc func(ctx context.Context, text string) (string, *model.Reminder)

type implUseCase struct {
	classifier intent.Classifier
	reminders  reminder.UseCase
	weather    command.WeatherLookup
	news       command.NewsLookup
	l          log.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
	loc        *time.Location
	handlers   map[intent.Intent]handlerFunc
}

var _ command.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithWeather sets the weather collaborator. Without one, weather requests
// answer that the API key is not configured.
func WithWeather(w command.WeatherLookup) Option {
	return func(uc *implUseCase) { uc.weather = w }
}

// WithNews sets the news collaborator.
func WithNews(n command.NewsLookup) Option {
	return func(uc *implUseCase) { uc.news = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithLocation sets the time zone for time and date answers.
func WithLocation(loc *time.Location) Option {
	return func(uc *implUseCase) {
		if loc != nil {
			uc.loc = loc
		}
	}
}

// WithMetrics sets the collector for command counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *implUseCase) { uc.metrics = m }
}

// New creates the command UseCase.
func New(classifier intent.Classifier, reminders reminder.UseCase, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		classifier: classifier,
		reminders:  reminders,
		l:          l,
		now:        time.Now,
		loc:        time.Local,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.handlers = map[intent.Intent]handlerFunc{
		intent.IntentGreeting:       fixed(ResponseGreeting),
		intent.IntentWeather:        uc.handleWeather,
		intent.IntentNews:           uc.handleNews,
		intent.IntentCreateReminder: uc.handleReminder,
		intent.IntentTime:           uc.handleTime,
		intent.IntentDate:           uc.handleDate,
		intent.IntentHelp:           fixed(ResponseHelp),
		intent.IntentThanks:         fixed(ResponseThanks),
		intent.IntentGoodbye:        fixed(ResponseGoodbye),
		intent.IntentUnknown:        uc.handleUnknown,
	}
	return uc
}

// LoadLocation resolves a time zone name, falling back to local time.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
