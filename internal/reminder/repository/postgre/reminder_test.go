package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder/repository"
	"voice-assistant/pkg/log"
)

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func TestMigrate(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS voice_reminders")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad(t *testing.T) {
	t.Run("stored collection", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(loadQuery)).
			WithArgs(collectionID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).
				AddRow([]byte(`[{"text":"call mom","time":"2024-03-10 09:15:00"}]`)))

		got, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "call mom", got[0].Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(loadQuery)).
			WithArgs(collectionID).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(loadQuery)).
			WithArgs(collectionID).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, repository.ErrFailedToRead)
	})

	t.Run("malformed document", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(loadQuery)).
			WithArgs(collectionID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow([]byte(`{"oops"`)))

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, repository.ErrCorrupt)
	})
}

func TestSave(t *testing.T) {
	t.Run("upserts document", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		at := time.Date(2024, 3, 10, 9, 15, 0, 0, time.Local)
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WithArgs(collectionID, []byte(`[{"text":"call mom","time":"2024-03-10 09:15:00"}]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(context.Background(), []model.Reminder{{Text: "call mom", CreatedAt: at}})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil saves empty array", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WithArgs(collectionID, []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WillReturnError(errors.New("disk full"))

		err := repo.Save(context.Background(), nil)
		assert.ErrorIs(t, err, repository.ErrFailedToWrite)
	})
}

func TestNew_PanicsWithoutDB(t *testing.T) {
	assert.Panics(t, func() { New(nil, log.NewNop()) })
}
