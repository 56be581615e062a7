package http

import (
	"voice-assistant/internal/reminder"
)

// MessageCleared confirms a successful clear.
const MessageCleared = "All reminders cleared"

type reminderItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

type listResp struct {
	Reminders []reminderItem `json:"reminders"`
}

type clearResp struct {
	Message string `json:"message"`
}

func (h *handler) newListResp(o reminder.ListOutput) listResp {
	items := make([]reminderItem, 0, len(o.Reminders))
	for _, r := range o.Reminders {
		items = append(items, reminderItem{
			Text: r.Text,
			Time: r.TimeText(),
		})
	}
	return listResp{Reminders: items}
}
