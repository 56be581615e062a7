package command

import (
	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
)

type HandleInput struct {
	Text string
}

// HandleOutput is the result of one utterance. Reminder is set only when a
// reminder was persisted.
type HandleOutput struct {
	Intent   intent.Intent
	Response string
	Reminder *model.Reminder
}
