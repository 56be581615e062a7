package usecase

import (
	"sync"
	"time"

	"go.opentelemetry.io/otel"

	"voice-assistant/internal/reminder"
	"voice-assistant/internal/reminder/repository"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

var tracer = otel.Tracer("voice-assistant/internal/reminder")

// implUseCase serializes every read-modify-write on the collection.
// Writers in other processes sharing the same store are not coordinated.
type implUseCase struct {
	mu      sync.Mutex
	repo    repository.Repository
	l       log.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ reminder.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock overrides the time source used to stamp new reminders.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithMetrics reports store activity to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *implUseCase) { uc.metrics = m }
}

// New creates the reminder UseCase on top of repo.
func New(repo repository.Repository, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
