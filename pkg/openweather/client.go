package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultBaseURL  = "http://api.openweathermap.org"
	DefaultCity     = "London"
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 10 * time.Minute
	cacheSize       = 64
)

var (
	ErrMissingAPIKey = errors.New("openweather: API key is not configured")
	ErrBadStatus     = errors.New("openweather: unexpected response status")
)

// Config configures the client. Zero values fall back to the defaults above;
// a negative CacheTTL disables caching.
type Config struct {
	APIKey   string
	City     string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client fetches current weather from the OpenWeatherMap API.
type Client struct {
	apiKey     string
	city       string
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, Report]
}

// New creates a Client. A missing API key is reported by Current, not here.
func New(cfg Config) *Client {
	if cfg.City == "" {
		cfg.City = DefaultCity
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		city:       cfg.City,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, Report](cacheSize, nil, cfg.CacheTTL)
	}
	return c
}

// City returns the configured city.
func (c *Client) City() string {
	return c.city
}

// Current returns the current weather for the configured city.
func (c *Client) Current(ctx context.Context) (Report, error) {
	if c.apiKey == "" {
		return Report{}, ErrMissingAPIKey
	}
	if c.cache != nil {
		if r, ok := c.cache.Get(c.city); ok {
			return r, nil
		}
	}

	q := url.Values{}
	q.Set("q", c.city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("failed to call OpenWeatherMap: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read OpenWeatherMap response: %w", err)
	}

	var parsed currentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Report{}, fmt.Errorf("failed to decode OpenWeatherMap response (status %d): %w", resp.StatusCode, err)
	}
	if !parsed.ok() {
		return Report{}, fmt.Errorf("%w: cod=%s message=%q", ErrBadStatus, string(parsed.Cod), parsed.Message)
	}
	if len(parsed.Weather) == 0 {
		return Report{}, fmt.Errorf("%w: no weather conditions in response", ErrBadStatus)
	}

	report := Report{
		City:        c.city,
		Description: parsed.Weather[0].Description,
		Temp:        parsed.Main.Temp,
		FeelsLike:   parsed.Main.FeelsLike,
	}
	if c.cache != nil {
		c.cache.Add(c.city, report)
	}
	return report, nil
}
