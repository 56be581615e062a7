package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"voice-assistant/config"
	_ "voice-assistant/docs" // Swagger docs
	"voice-assistant/internal/app"
	tgDelivery "voice-assistant/internal/command/delivery/telegram"
	"voice-assistant/internal/httpserver"
	"voice-assistant/internal/middleware"
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/telegram"
)

// @title       Voice Assistant API
// @description Keyword-driven voice assistant: commands, reminders, speech synthesis and recognition.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting voice assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Use cases
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}
	defer a.Close(context.Background())

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramHandler = setupTelegram(ctx, logger, cfg.Telegram, a)
	} else {
		logger.Info(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 5. HTTP Server
	mw := middleware.New(logger, a.Metrics, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TelegramSecret:  cfg.Telegram.WebhookSecret,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		Metrics:         a.Metrics,
		CommandUC:       a.Command,
		ReminderUC:      a.Reminder,
		AudioUC:         a.Audio,
		TelegramHandler: telegramHandler,
		AudioDir:        cfg.Audio.Dir,
		AudioURLPrefix:  cfg.Audio.URLPrefix,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	// Expired speech artifacts left by a previous run; one pass, off the request path.
	g.Go(func() error {
		sweep(gctx, logger, a)
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func setupTelegram(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, a *app.App) tgDelivery.Handler {
	bot, err := telegram.NewBot(cfg.BotToken)
	if err != nil {
		logger.Warnf(ctx, "Telegram not available: %v", err)
		return nil
	}
	logger.Infof(ctx, "Telegram bot @%s ready", bot.Username())

	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		publicURL, err := detectNgrokURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = publicURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL != "" {
		if err := bot.SetWebhook(webhookURL, cfg.WebhookSecret); err != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return tgDelivery.New(logger, a.Command, bot)
}

func sweep(ctx context.Context, logger log.Logger, a *app.App) {
	out, err := a.Audio.Sweep(ctx, time.Now())
	if err != nil {
		logger.Warnf(ctx, "Audio sweep failed: %v", err)
		return
	}
	if out.Deleted > 0 || out.Skipped > 0 {
		logger.Infof(ctx, "Audio sweep: deleted=%d skipped=%d kept=%d", out.Deleted, out.Skipped, out.Kept)
	}
}
