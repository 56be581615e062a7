package gcloud

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/speech/v1"
	"google.golang.org/api/texttospeech/v1"
)

const (
	DefaultLanguageCode = "en-US"
	audioEncodingMP3    = "MP3"
)

// Config selects the voice and recognition language.
type Config struct {
	CredentialsPath string
	LanguageCode    string
	// Voice is a Text-to-Speech voice name such as "en-US-Standard-C". Empty lets
	// the service pick one for LanguageCode.
	Voice string
	// Encoding is the Speech-to-Text input encoding. Empty relies on the WAV or
	// FLAC header.
	Encoding        string
	SampleRateHertz int64
}

// Client wraps the Google Cloud Text-to-Speech and Speech-to-Text services.
type Client struct {
	tts *texttospeech.Service
	stt *speech.Service
	cfg Config
}

// New creates a Client. Without opts, credentials come from cfg.CredentialsPath.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Client, error) {
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = DefaultLanguageCode
	}
	if len(opts) == 0 {
		ts, err := TokenSourceFromFile(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		opts = []option.ClientOption{option.WithTokenSource(ts)}
	}

	tts, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	stt, err := speech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{tts: tts, stt: stt, cfg: cfg}, nil
}

// Synthesize returns MP3 audio for text.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: c.cfg.LanguageCode,
			Name:         c.cfg.Voice,
		},
		AudioConfig: &texttospeech.AudioConfig{AudioEncoding: audioEncodingMP3},
	}

	resp, err := c.tts.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("text-to-speech synthesize: %w", err)
	}
	if resp.AudioContent == "" {
		return nil, errors.New("text-to-speech returned no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio content: %w", err)
	}
	return audio, nil
}

// Recognize returns the best transcript for audio, or "" when nothing was
// recognized.
func (c *Client) Recognize(ctx context.Context, audio []byte) (string, error) {
	req := &speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			LanguageCode:               c.cfg.LanguageCode,
			Encoding:                   c.cfg.Encoding,
			SampleRateHertz:            c.cfg.SampleRateHertz,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := c.stt.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}
	for _, r := range resp.Results {
		if r == nil || len(r.Alternatives) == 0 || r.Alternatives[0] == nil {
			continue
		}
		if t := r.Alternatives[0].Transcript; t != "" {
			return t, nil
		}
	}
	return "", nil
}
