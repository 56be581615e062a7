package http

import (
	"voice-assistant/internal/audio"
	"voice-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc audio.UseCase
}

// New creates the text-to-speech HTTP handler.
func New(l log.Logger, uc audio.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
