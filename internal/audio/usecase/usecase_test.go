package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/audio"
	"voice-assistant/internal/audio/repository"
	"voice-assistant/internal/audio/repository/filesystem"
	"voice-assistant/internal/audio/usecase"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

type mockSynthesizer struct {
	data []byte
	err  error
	got  string
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.got = text
	return m.data, m.err
}

type mockRecognizer struct {
	text string
	err  error
}

func (m *mockRecognizer) Recognize(ctx context.Context, data []byte) (string, error) {
	return m.text, m.err
}

func okProbe(data []byte) (time.Duration, error) { return 1500 * time.Millisecond, nil }

func badProbe(data []byte) (time.Duration, error) { return 0, errors.New("not mp3") }

func newStorage(t *testing.T) (string, repository.Storage) {
	t.Helper()
	dir := t.TempDir()
	s, err := filesystem.New(dir, log.NewNop())
	require.NoError(t, err)
	return dir, s
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func remaining(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	dir, storage := newStorage(t)
	touch(t, dir, "100.mp3", "notanumber.mp3", "4000.mp3", "1400.mp3", "readme.txt")

	uc := usecase.New(storage, log.NewNop(), usecase.WithMetrics(metrics.New()))
	out, err := uc.Sweep(ctx, time.Unix(5000, 0))
	require.NoError(t, err)

	assert.Equal(t, audio.SweepOutput{Deleted: 1, Skipped: 1, Kept: 2}, out)
	assert.Equal(t, []string{"1400.mp3", "4000.mp3", "notanumber.mp3", "readme.txt"}, remaining(t, dir))
}

func TestSweep_CustomRetention(t *testing.T) {
	ctx := context.Background()
	dir, storage := newStorage(t)
	touch(t, dir, "4000.mp3", "4990.mp3")

	uc := usecase.New(storage, log.NewNop(), usecase.WithRetention(time.Minute))
	out, err := uc.Sweep(ctx, time.Unix(5000, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Deleted)
	assert.Equal(t, []string{"4990.mp3"}, remaining(t, dir))
}

func TestSweep_MissingDir(t *testing.T) {
	ctx := context.Background()
	dir, storage := newStorage(t)
	require.NoError(t, os.RemoveAll(dir))

	_, err := usecase.New(storage, log.NewNop()).Sweep(ctx, time.Now())
	assert.Error(t, err)
}

func TestSpeak(t *testing.T) {
	ctx := context.Background()
	at := time.Unix(1700000000, 123456000)

	t.Run("stores artifact", func(t *testing.T) {
		dir, storage := newStorage(t)
		synth := &mockSynthesizer{data: []byte("ID3fake")}
		uc := usecase.New(storage, log.NewNop(),
			usecase.WithSynthesizer(synth),
			usecase.WithProbe(okProbe),
			usecase.WithClock(func() time.Time { return at }),
		)

		out, err := uc.Speak(ctx, audio.SpeakInput{Text: "  hello there "})
		require.NoError(t, err)
		assert.Equal(t, "hello there", synth.got)
		assert.Equal(t, 1500*time.Millisecond, out.Duration)
		assert.True(t, out.Artifact.CreatedAt.Equal(at))
		assert.True(t, strings.HasPrefix(out.URL, "/static/audio/1700000000.123456-"))
		assert.True(t, strings.HasSuffix(out.URL, ".mp3"))

		name := out.Artifact.FileName()
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "ID3fake", string(data))

		parsed, ok := audio.ParseFileName(name)
		require.True(t, ok)
		assert.Equal(t, out.Artifact.ID, parsed.ID)
	})

	t.Run("empty text", func(t *testing.T) {
		_, storage := newStorage(t)
		uc := usecase.New(storage, log.NewNop(), usecase.WithSynthesizer(&mockSynthesizer{}))
		_, err := uc.Speak(ctx, audio.SpeakInput{Text: "   "})
		assert.ErrorIs(t, err, audio.ErrEmptyText)
	})

	t.Run("no synthesizer", func(t *testing.T) {
		_, storage := newStorage(t)
		_, err := usecase.New(storage, log.NewNop()).Speak(ctx, audio.SpeakInput{Text: "hi"})
		assert.ErrorIs(t, err, audio.ErrNoSynthesizer)
	})

	t.Run("synthesis failure", func(t *testing.T) {
		_, storage := newStorage(t)
		uc := usecase.New(storage, log.NewNop(),
			usecase.WithSynthesizer(&mockSynthesizer{err: errors.New("quota")}))
		_, err := uc.Speak(ctx, audio.SpeakInput{Text: "hi"})
		assert.ErrorIs(t, err, audio.ErrSynthesis)
	})

	t.Run("invalid audio is not stored", func(t *testing.T) {
		dir, storage := newStorage(t)
		uc := usecase.New(storage, log.NewNop(),
			usecase.WithSynthesizer(&mockSynthesizer{data: []byte("<html>")}),
			usecase.WithProbe(badProbe))
		_, err := uc.Speak(ctx, audio.SpeakInput{Text: "hi"})
		assert.ErrorIs(t, err, audio.ErrInvalidAudio)
		assert.Empty(t, remaining(t, dir))
	})
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()
	_, storage := newStorage(t)

	tests := []struct {
		name    string
		rec     audio.Recognizer
		data    []byte
		want    string
		wantErr error
	}{
		{name: "ok", rec: &mockRecognizer{text: " What time is it "}, data: []byte{1}, want: "What time is it"},
		{name: "empty audio", rec: &mockRecognizer{}, data: nil, wantErr: audio.ErrEmptyAudio},
		{name: "no recognizer", rec: nil, data: []byte{1}, wantErr: audio.ErrNoRecognizer},
		{name: "not understood", rec: &mockRecognizer{text: "  "}, data: []byte{1}, wantErr: audio.ErrNotUnderstood},
		{name: "service failure", rec: &mockRecognizer{err: errors.New("503")}, data: []byte{1}, wantErr: audio.ErrRecognition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []usecase.Option
			if tt.rec != nil {
				opts = append(opts, usecase.WithRecognizer(tt.rec))
			}
			got, err := usecase.New(storage, log.NewNop(), opts...).Transcribe(ctx, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProbeMP3_RejectsGarbage(t *testing.T) {
	_, err := usecase.ProbeMP3(nil)
	assert.Error(t, err)
	_, err = usecase.ProbeMP3([]byte("definitely not an mp3 stream"))
	assert.Error(t, err)
}
