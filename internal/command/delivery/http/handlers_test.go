package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/audio"
	"voice-assistant/internal/command"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/middleware"
	"voice-assistant/internal/model"
	"voice-assistant/pkg/log"
)

type mockCommandUC struct {
	got command.HandleInput
	out command.HandleOutput
	err error
}

func (m *mockCommandUC) Handle(_ context.Context, in command.HandleInput) (command.HandleOutput, error) {
	m.got = in
	return m.out, m.err
}

type mockAudioUC struct {
	text string
	err  error
	got  []byte
}

func (m *mockAudioUC) Sweep(context.Context, time.Time) (audio.SweepOutput, error) {
	return audio.SweepOutput{}, nil
}

func (m *mockAudioUC) Speak(context.Context, audio.SpeakInput) (audio.SpeakOutput, error) {
	return audio.SpeakOutput{}, nil
}

func (m *mockAudioUC) Transcribe(_ context.Context, data []byte) (string, error) {
	m.got = data
	return m.text, m.err
}

type envelope struct {
	ErrorCode int         `json:"error_code"`
	Message   string      `json:"message"`
	Data      commandResp `json:"data"`
}

func newEngine(cmd *mockCommandUC, au *mockAudioUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), cmd, au)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), nil, middleware.Config{}))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func audioRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "recording.wav")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/process_audio", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandle(t *testing.T) {
	createdAt := time.Date(2024, 3, 11, 15, 4, 5, 0, time.Local)

	t.Run("answers with the command response", func(t *testing.T) {
		cmd := &mockCommandUC{out: command.HandleOutput{
			Intent:   intent.IntentGreeting,
			Response: "Hi there! How can I help you today?",
		}}
		r := newEngine(cmd, &mockAudioUC{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(`{"text":"Hello there"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.Equal(t, 0, env.ErrorCode)
		assert.Equal(t, "Hi there! How can I help you today?", env.Data.Response)
		assert.Equal(t, "Hello there", env.Data.RecognizedText)
		assert.Equal(t, string(intent.IntentGreeting), env.Data.Intent)
		assert.Nil(t, env.Data.Reminder)
		assert.Equal(t, "Hello there", cmd.got.Text)
	})

	t.Run("includes the stored reminder", func(t *testing.T) {
		rem := model.NewReminder("call mom", createdAt)
		cmd := &mockCommandUC{out: command.HandleOutput{
			Intent:   intent.IntentCreateReminder,
			Response: "Reminder set successfully: call mom",
			Reminder: &rem,
		}}
		r := newEngine(cmd, &mockAudioUC{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(`{"text":"remind me to call mom"}`))
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reminder":{"text":"call mom","time":"2024-03-11 15:04:05"}`)
	})

	t.Run("missing text", func(t *testing.T) {
		cmd := &mockCommandUC{}
		r := newEngine(cmd, &mockAudioUC{})

		for _, body := range []string{`{}`, `{"text":null}`, `not json`} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "No text provided", decode(t, w).Message, body)
		}
	})

	t.Run("use case failure", func(t *testing.T) {
		cmd := &mockCommandUC{err: context.Canceled}
		r := newEngine(cmd, &mockAudioUC{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(`{"text":"hi"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProcessAudio(t *testing.T) {
	t.Run("transcribes and handles", func(t *testing.T) {
		cmd := &mockCommandUC{out: command.HandleOutput{Intent: intent.IntentTime, Response: "The current time is 03:04 PM"}}
		au := &mockAudioUC{text: "What time is it"}
		r := newEngine(cmd, au)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, audioRequest(t, audioFormField, []byte("RIFF....WAVE")))

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.Equal(t, "The current time is 03:04 PM", env.Data.Response)
		assert.Equal(t, "What time is it", env.Data.RecognizedText)
		assert.Equal(t, []byte("RIFF....WAVE"), au.got)
		assert.Equal(t, "What time is it", cmd.got.Text)
	})

	t.Run("no file", func(t *testing.T) {
		r := newEngine(&mockCommandUC{}, &mockAudioUC{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, audioRequest(t, "other", []byte("x")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No audio file received.", decode(t, w).Message)
	})

	t.Run("empty file", func(t *testing.T) {
		au := &mockAudioUC{}
		r := newEngine(&mockCommandUC{}, au)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, audioRequest(t, audioFormField, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Empty audio file received.", decode(t, w).Message)
		assert.Nil(t, au.got)
	})

	tcs := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not understood", audio.ErrNotUnderstood, http.StatusBadRequest, "Could not understand audio. Please speak more clearly and try again."},
		{"recognizer down", errors.Join(audio.ErrRecognition, errors.New("dial tcp")), http.StatusInternalServerError, "Speech recognition service is unavailable. Please check your internet connection and try again."},
		{"no recognizer", audio.ErrNoRecognizer, http.StatusInternalServerError, "Speech recognition service is unavailable. Please check your internet connection and try again."},
		{"other", errors.New("boom"), http.StatusInternalServerError, "Audio processing error. Please try again."},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &mockCommandUC{}
			r := newEngine(cmd, &mockAudioUC{err: tc.err})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, audioRequest(t, audioFormField, []byte("data")))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, decode(t, w).Message)
			assert.Empty(t, cmd.got.Text)
		})
	}
}
