package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-assistant/internal/audio"
	"voice-assistant/internal/command"
	tgDelivery "voice-assistant/internal/command/delivery/telegram"
	"voice-assistant/internal/middleware"
	"voice-assistant/internal/reminder"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	metrics     *metrics.Metrics

	// Domains
	commandUC       command.UseCase
	reminderUC      reminder.UseCase
	audioUC         audio.UseCase
	telegramHandler tgDelivery.Handler

	// Static audio artifacts
	audioDir       string
	audioURLPrefix string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Metrics     *metrics.Metrics

	CommandUC  command.UseCase
	ReminderUC reminder.UseCase
	AudioUC    audio.UseCase

	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler tgDelivery.Handler

	// AudioDir is served under AudioURLPrefix when both are set.
	AudioDir       string
	AudioURLPrefix string
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		commandUC:       cfg.CommandUC,
		reminderUC:      cfg.ReminderUC,
		audioUC:         cfg.AudioUC,
		telegramHandler: cfg.TelegramHandler,
		audioDir:        cfg.AudioDir,
		audioURLPrefix:  cfg.AudioURLPrefix,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.commandUC == nil {
		return errors.New("command usecase is required")
	}
	if srv.reminderUC == nil {
		return errors.New("reminder usecase is required")
	}
	if srv.audioUC == nil {
		return errors.New("audio usecase is required")
	}
	return nil
}
