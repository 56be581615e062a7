package reminder

import "voice-assistant/internal/model"

// CreateInput is the input for appending a reminder.
type CreateInput struct {
	Text string
}

// CreateOutput holds the record that was appended.
type CreateOutput struct {
	Reminder model.Reminder
}

// ListOutput holds the whole collection in creation order.
type ListOutput struct {
	Reminders []model.Reminder
}
