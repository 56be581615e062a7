package http

import (
	"voice-assistant/internal/audio"
	"voice-assistant/internal/command"
	"voice-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    command.UseCase
	audio audio.UseCase
}

// New creates the HTTP handler for text and voice commands.
func New(l log.Logger, uc command.UseCase, audioUC audio.UseCase) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		audio: audioUC,
	}
}
