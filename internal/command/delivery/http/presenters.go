package http

import (
	"voice-assistant/internal/command"
	"voice-assistant/pkg/response"
)

// --- Request DTOs ---

type commandReq struct {
	Text *string `json:"text"`
}

func (r commandReq) validate() error {
	if r.Text == nil {
		return errNoText
	}
	return nil
}

func (r commandReq) toInput() command.HandleInput {
	return command.HandleInput{Text: *r.Text}
}

// --- Response DTOs ---

type reminderResp struct {
	Text string            `json:"text"`
	Time response.DateTime `json:"time"`
}

type commandResp struct {
	Response       string        `json:"response"`
	RecognizedText string        `json:"recognized_text"`
	Intent         string        `json:"intent"`
	Reminder       *reminderResp `json:"reminder,omitempty"`
}

func (h *handler) newCommandResp(recognized string, out command.HandleOutput) commandResp {
	resp := commandResp{
		Response:       out.Response,
		RecognizedText: recognized,
		Intent:         string(out.Intent),
	}
	if out.Reminder != nil {
		resp.Reminder = &reminderResp{
			Text: out.Reminder.Text,
			Time: response.DateTime(out.Reminder.CreatedAt),
		}
	}
	return resp
}
