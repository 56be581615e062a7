package http

import (
	"voice-assistant/internal/reminder"
	"voice-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates the reminder HTTP handler.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
