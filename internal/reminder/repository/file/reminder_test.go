package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder/repository"
	"voice-assistant/internal/reminder/repository/file"
	"voice-assistant/pkg/log"
)

func newRepo(t *testing.T) (repository.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "reminders.json")
	repo, err := file.New(context.Background(), path, log.NewNop())
	require.NoError(t, err)
	return repo, path
}

func TestNew_CreatesEmptyFile(t *testing.T) {
	_, path := newRepo(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNew_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text":"keep","time":"2024-01-01 10:00:00"}]`), 0o644))

	repo, err := file.New(context.Background(), path, log.NewNop())
	require.NoError(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Text)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := file.New(context.Background(), "", log.NewNop())
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	in := []model.Reminder{
		{Text: "first", CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)},
		{Text: "second", CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)},
	}
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.True(t, in[1].CreatedAt.Equal(got[1].CreatedAt))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLoad_Missing(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	require.NoError(t, os.Remove(path))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Corrupt(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrCorrupt)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	require.NoError(t, repo.Save(ctx, []model.Reminder{{Text: "x", CreatedAt: time.Now()}}))
	require.NoError(t, repo.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSave_UnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	ctx := context.Background()
	repo, path := newRepo(t)
	dir := filepath.Dir(path)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := repo.Save(ctx, []model.Reminder{{Text: "x", CreatedAt: time.Now()}})
	assert.ErrorIs(t, err, repository.ErrFailedToWrite)
}
