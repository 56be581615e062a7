// Package app builds the assistant's use cases from configuration. The API
// server and the CLI share it.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"voice-assistant/config"
	"voice-assistant/config/postgre"
	"voice-assistant/internal/audio"
	audioRepo "voice-assistant/internal/audio/repository/filesystem"
	audioUsecase "voice-assistant/internal/audio/usecase"
	"voice-assistant/internal/command"
	commandUsecase "voice-assistant/internal/command/usecase"
	"voice-assistant/internal/intent"
	"voice-assistant/internal/reminder"
	reminderRepo "voice-assistant/internal/reminder/repository"
	reminderFile "voice-assistant/internal/reminder/repository/file"
	reminderPostgre "voice-assistant/internal/reminder/repository/postgre"
	reminderUsecase "voice-assistant/internal/reminder/usecase"
	"voice-assistant/pkg/gcloud"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
	"voice-assistant/pkg/newsapi"
	"voice-assistant/pkg/openweather"
)

// App holds the wired use cases.
type App struct {
	Metrics  *metrics.Metrics
	Reminder reminder.UseCase
	Command  command.UseCase
	Audio    audio.UseCase

	db *sql.DB
}

// New wires repositories, collaborators and use cases. Optional collaborators
// that fail to initialize are logged and left out.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{}
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
	}

	repo, err := a.reminderRepository(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	a.Reminder = reminderUsecase.New(repo, l, reminderUsecase.WithMetrics(a.Metrics))

	weather := openweather.New(openweather.Config{
		APIKey:   cfg.Weather.APIKey,
		City:     cfg.Weather.City,
		BaseURL:  cfg.Weather.BaseURL,
		Timeout:  cfg.Weather.Timeout,
		CacheTTL: cfg.Weather.CacheTTL,
	})
	news := newsapi.New(newsapi.Config{
		APIKey:   cfg.News.APIKey,
		Country:  cfg.News.Country,
		BaseURL:  cfg.News.BaseURL,
		Limit:    cfg.News.Limit,
		Timeout:  cfg.News.Timeout,
		CacheTTL: cfg.News.CacheTTL,
	})
	a.Command = commandUsecase.New(intent.New(), a.Reminder, l,
		commandUsecase.WithWeather(weather),
		commandUsecase.WithNews(news),
		commandUsecase.WithLocation(commandUsecase.LoadLocation(cfg.Assistant.Timezone)),
		commandUsecase.WithMetrics(a.Metrics),
	)

	storage, err := audioRepo.New(cfg.Audio.Dir, l)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("audio storage: %w", err)
	}
	audioOpts := []audioUsecase.Option{
		audioUsecase.WithRetention(cfg.Audio.Retention),
		audioUsecase.WithURLPrefix(cfg.Audio.URLPrefix),
		audioUsecase.WithMetrics(a.Metrics),
	}
	if cfg.Google.Enabled {
		gc, err := gcloud.New(ctx, gcloud.Config{
			CredentialsPath: cfg.Google.CredentialsPath,
			LanguageCode:    cfg.Google.LanguageCode,
			Voice:           cfg.Google.Voice,
		})
		if err != nil {
			l.Warnf(ctx, "Google Cloud speech not available: %v", err)
		} else {
			audioOpts = append(audioOpts, audioUsecase.WithSynthesizer(gc), audioUsecase.WithRecognizer(gc))
			l.Info(ctx, "Google Cloud speech initialized")
		}
	}
	a.Audio = audioUsecase.New(storage, l, audioOpts...)

	return a, nil
}

func (a *App) reminderRepository(ctx context.Context, cfg *config.Config, l log.Logger) (reminderRepo.Repository, error) {
	switch cfg.Reminder.Backend {
	case config.ReminderBackendPostgres:
		db, err := postgre.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		repo := reminderPostgre.New(db, l)
		if err := repo.Migrate(ctx); err != nil {
			_ = postgre.Disconnect(ctx, db)
			return nil, err
		}
		a.db = db
		l.Info(ctx, "Reminders stored in Postgres")
		return repo, nil
	case config.ReminderBackendFile:
		repo, err := reminderFile.New(ctx, cfg.Reminder.FilePath, l)
		if err != nil {
			return nil, err
		}
		l.Infof(ctx, "Reminders stored in %s", cfg.Reminder.FilePath)
		return repo, nil
	default:
		return nil, errors.New("unknown reminder backend " + cfg.Reminder.Backend)
	}
}

// Close releases the database connection, if any.
func (a *App) Close(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := postgre.Disconnect(ctx, a.db)
	a.db = nil
	return err
}
