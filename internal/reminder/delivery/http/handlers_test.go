package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/middleware"
	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder"
	"voice-assistant/internal/reminder/repository/file"
	"voice-assistant/internal/reminder/usecase"
	"voice-assistant/pkg/log"
)

type mockReminderUC struct {
	list     reminder.ListOutput
	listErr  error
	clearErr error
	cleared  bool
}

func (m *mockReminderUC) Create(context.Context, reminder.CreateInput) (reminder.CreateOutput, error) {
	return reminder.CreateOutput{}, nil
}

func (m *mockReminderUC) List(context.Context) (reminder.ListOutput, error) {
	return m.list, m.listErr
}

func (m *mockReminderUC) Clear(context.Context) error {
	m.cleared = true
	return m.clearErr
}

func newEngine(uc reminder.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), nil, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, "/api/v1/reminders", nil))
	return w
}

func TestList(t *testing.T) {
	at := time.Date(2024, 3, 11, 9, 30, 0, 0, time.Local)

	t.Run("returns reminders in order", func(t *testing.T) {
		uc := &mockReminderUC{list: reminder.ListOutput{Reminders: []model.Reminder{
			model.NewReminder("call mom", at),
			model.NewReminder("buy milk", at.Add(time.Minute)),
		}}}

		w := do(newEngine(uc), http.MethodGet)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{"reminders":[
			{"text":"call mom","time":"2024-03-11 09:30:00"},
			{"text":"buy milk","time":"2024-03-11 09:31:00"}]}}`, w.Body.String())
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		w := do(newEngine(&mockReminderUC{}), http.MethodGet)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reminders":[]`)
	})

	t.Run("read failure still answers", func(t *testing.T) {
		w := do(newEngine(&mockReminderUC{listErr: errors.New("boom")}), http.MethodGet)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reminders":[]`)
	})
}

func TestClear(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockReminderUC{}

		w := do(newEngine(uc), http.MethodDelete)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"All reminders cleared"`)
		assert.True(t, uc.cleared)
	})

	t.Run("write failure", func(t *testing.T) {
		uc := &mockReminderUC{clearErr: reminder.ErrStoreWrite}

		w := do(newEngine(uc), http.MethodDelete)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Failed to clear reminders"`)
	})
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := file.New(ctx, filepath.Join(t.TempDir(), "reminders.json"), log.NewNop())
	require.NoError(t, err)
	uc := usecase.New(repo, log.NewNop())

	_, err = uc.Create(ctx, reminder.CreateInput{Text: "water plants"})
	require.NoError(t, err)

	r := newEngine(uc)
	w := do(r, http.MethodGet)
	assert.Contains(t, w.Body.String(), `"text":"water plants"`)

	w = do(r, http.MethodDelete)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet)
	assert.Contains(t, w.Body.String(), `"reminders":[]`)
}
