package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Reminder storage backends.
const (
	ReminderBackendFile     = "file"
	ReminderBackendPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// Assistant
	Assistant AssistantConfig
	Reminder  ReminderConfig
	Postgres  PostgresConfig
	Audio     AudioConfig

	// Collaborators
	Weather  WeatherConfig
	News     NewsConfig
	Google   GoogleConfig
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type MetricsConfig struct {
	Enabled bool
}

// AssistantConfig holds settings for the command handlers.
type AssistantConfig struct {
	// Timezone is an IANA name used for time and date answers. Empty means local.
	Timezone string
}

type ReminderConfig struct {
	Backend  string
	FilePath string
}

type PostgresConfig struct {
	DSN string
}

type AudioConfig struct {
	Dir       string
	URLPrefix string
	Retention time.Duration
}

type WeatherConfig struct {
	APIKey   string
	City     string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type NewsConfig struct {
	APIKey   string
	Country  string
	BaseURL  string
	Limit    int
	Timeout  time.Duration
	CacheTTL time.Duration
}

// GoogleConfig configures Cloud Text-to-Speech and Speech-to-Text.
type GoogleConfig struct {
	Enabled         bool
	CredentialsPath string
	LanguageCode    string
	Voice           string
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// NgrokAPI is the local ngrok agent API, used to find a public webhook URL
	// when WebhookURL is empty.
	NgrokAPI string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/voice-assistant/.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/voice-assistant/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	// Assistant
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Reminder.Backend = strings.ToLower(v.GetString("reminder.backend"))
	cfg.Reminder.FilePath = v.GetString("reminder.file_path")
	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Audio.Dir = v.GetString("audio.dir")
	cfg.Audio.URLPrefix = v.GetString("audio.url_prefix")
	cfg.Audio.Retention = v.GetDuration("audio.retention")

	// Collaborators. The bare *_API_KEY variables match the names used in .env files.
	cfg.Weather.APIKey = v.GetString("weather.api_key")
	if key := v.GetString("weather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}
	cfg.Weather.City = v.GetString("weather.city")
	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")
	cfg.Weather.CacheTTL = v.GetDuration("weather.cache_ttl")

	cfg.News.APIKey = v.GetString("news.api_key")
	if key := v.GetString("news_api_key"); key != "" {
		cfg.News.APIKey = key
	}
	cfg.News.Country = v.GetString("news.country")
	cfg.News.BaseURL = v.GetString("news.base_url")
	cfg.News.Limit = v.GetInt("news.limit")
	cfg.News.Timeout = v.GetDuration("news.timeout")
	cfg.News.CacheTTL = v.GetDuration("news.cache_ttl")

	cfg.Google.Enabled = v.GetBool("google.enabled")
	cfg.Google.CredentialsPath = v.GetString("google.credentials_path")
	if creds := v.GetString("google_application_credentials"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}
	cfg.Google.LanguageCode = v.GetString("google.language_code")
	cfg.Google.Voice = v.GetString("google.voice")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Reminder.Backend {
	case ReminderBackendFile:
		if cfg.Reminder.FilePath == "" {
			return fmt.Errorf("reminder.file_path is required for the file backend")
		}
	case ReminderBackendPostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown reminder.backend %q", cfg.Reminder.Backend)
	}
	if cfg.Audio.Retention <= 0 {
		return fmt.Errorf("audio.retention must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("reminder.backend", ReminderBackendFile)
	v.SetDefault("reminder.file_path", "reminders.json")
	v.SetDefault("audio.dir", "static/audio")
	v.SetDefault("audio.url_prefix", "/static/audio")
	v.SetDefault("audio.retention", "1h")

	v.SetDefault("weather.city", "London")
	v.SetDefault("weather.timeout", "5s")
	v.SetDefault("weather.cache_ttl", "10m")
	v.SetDefault("news.country", "us")
	v.SetDefault("news.limit", 3)
	v.SetDefault("news.timeout", "5s")
	v.SetDefault("news.cache_ttl", "10m")
	v.SetDefault("google.language_code", "en-US")
}
