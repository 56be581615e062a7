package model

import (
	"encoding/json"
	"strings"
	"time"
)

// ReminderTimeLayout is the persisted timestamp format ("2006-01-02 15:04:05", local time).
const ReminderTimeLayout = "2006-01-02 15:04:05"

// Reminder is a single persisted reminder. Records are immutable once created.
type Reminder struct {
	Text      string
	CreatedAt time.Time // second precision; zero when the stored time could not be parsed

	// rawTime is the stored time string when it did not parse. It is written
	// back unchanged so foreign records survive a rewrite.
	rawTime string
}

type reminderJSON struct {
	Text string `json:"text"`
	Time string `json:"time,omitempty"`
}

var fallbackTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// NewReminder builds a record for text at now, truncating now to the second.
func NewReminder(text string, now time.Time) Reminder {
	return Reminder{
		Text:      strings.TrimSpace(text),
		CreatedAt: now.Truncate(time.Second),
	}
}

// HasTime reports whether the record carries a parsed creation time.
func (r Reminder) HasTime() bool {
	return !r.CreatedAt.IsZero()
}

// TimeText renders the creation time in ReminderTimeLayout, or the stored
// string as-is when it could not be parsed.
func (r Reminder) TimeText() string {
	if !r.HasTime() {
		return r.rawTime
	}
	return r.CreatedAt.Local().Format(ReminderTimeLayout)
}

// MarshalJSON encodes the record as {"text": ..., "time": "YYYY-MM-DD HH:MM:SS"}.
func (r Reminder) MarshalJSON() ([]byte, error) {
	return json.Marshal(reminderJSON{
		Text: r.Text,
		Time: r.TimeText(),
	})
}

// UnmarshalJSON decodes the {"text","time"} form written by MarshalJSON.
// A missing or unrecognized time leaves CreatedAt zero and keeps the record.
func (r *Reminder) UnmarshalJSON(data []byte) error {
	var raw reminderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Text = raw.Text
	r.CreatedAt, r.rawTime = parseReminderTime(raw.Time)
	return nil
}

func parseReminderTime(s string) (time.Time, string) {
	if t, err := time.ParseInLocation(ReminderTimeLayout, s, time.Local); err == nil {
		return t, ""
	}
	for _, layout := range fallbackTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Truncate(time.Second), ""
		}
	}
	return time.Time{}, s
}
