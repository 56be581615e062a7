package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voice_assistant"

// Metrics holds the Prometheus collectors reported by the assistant.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	commands            *prometheus.CounterVec
	collaboratorErrors  *prometheus.CounterVec
	remindersCreated    prometheus.Counter
	reminderStoreErrors *prometheus.CounterVec
	audioSynthesized    prometheus.Counter
	audioSwept          prometheus.Counter
	rateLimited         prometheus.Counter
	httpDuration        *prometheus.HistogramVec
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return MustNew(reg, reg)
}

// MustNew registers the collectors on reg and panics on duplicate registration.
func MustNew(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		gatherer: gatherer,
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Utterances handled, by classified intent.",
		}, []string{"intent"}),
		collaboratorErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_errors_total",
			Help:      "Failed calls to external services.",
		}, []string{"collaborator"}),
		remindersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminders",
			Name:      "created_total",
			Help:      "Reminders appended to the store.",
		}),
		reminderStoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminders",
			Name:      "store_errors_total",
			Help:      "Reminder store read or write faults.",
		}, []string{"op"}),
		audioSynthesized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audio",
			Name:      "synthesized_total",
			Help:      "Speech artifacts written.",
		}),
		audioSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audio",
			Name:      "swept_total",
			Help:      "Expired speech artifacts removed.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.commands,
		m.collaboratorErrors,
		m.remindersCreated,
		m.reminderStoreErrors,
		m.audioSynthesized,
		m.audioSwept,
		m.rateLimited,
		m.httpDuration,
	)
	return m
}

// Handler serves the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) IncCommand(intent string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(intent).Inc()
}

func (m *Metrics) IncCollaboratorError(name string) {
	if m == nil {
		return
	}
	m.collaboratorErrors.WithLabelValues(name).Inc()
}

func (m *Metrics) IncReminderCreated() {
	if m == nil {
		return
	}
	m.remindersCreated.Inc()
}

// IncReminderStoreError counts a store fault; op is "read" or "write".
func (m *Metrics) IncReminderStoreError(op string) {
	if m == nil {
		return
	}
	m.reminderStoreErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) IncAudioSynthesized() {
	if m == nil {
		return
	}
	m.audioSynthesized.Inc()
}

func (m *Metrics) AddAudioSwept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.audioSwept.Add(float64(n))
}

func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveHTTP records the latency of a finished request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
