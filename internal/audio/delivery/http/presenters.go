package http

import "voice-assistant/internal/audio"

type speakReq struct {
	Text *string `json:"text"`
}

func (r speakReq) validate() error {
	if r.Text == nil {
		return errNoText
	}
	return nil
}

func (r speakReq) toInput() audio.SpeakInput {
	return audio.SpeakInput{Text: *r.Text}
}

type speakResp struct {
	AudioURL string `json:"audio_url"`
}

func (h *handler) newSpeakResp(o audio.SpeakOutput) speakResp {
	return speakResp{AudioURL: o.URL}
}
