package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultBaseURL  = "https://newsapi.org"
	DefaultCountry  = "us"
	DefaultLimit    = 3
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 5 * time.Minute
	cacheSize       = 16
	statusOK        = "ok"
)

var (
	ErrMissingAPIKey = errors.New("newsapi: API key is not configured")
	ErrBadStatus     = errors.New("newsapi: unexpected response status")
)

// Config configures the client. Zero values fall back to the defaults above;
// a negative CacheTTL disables caching.
type Config struct {
	APIKey   string
	Country  string
	BaseURL  string
	Limit    int
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client fetches top headlines from NewsAPI.
type Client struct {
	apiKey     string
	country    string
	baseURL    string
	limit      int
	httpClient *http.Client
	cache      *expirable.LRU[string, []Article]
}

// New creates a Client. A missing API key is reported by TopHeadlines.
func New(cfg Config) *Client {
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		country:    cfg.Country,
		baseURL:    cfg.BaseURL,
		limit:      cfg.Limit,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, []Article](cacheSize, nil, cfg.CacheTTL)
	}
	return c
}

// TopHeadlines returns at most Limit articles for the configured country.
func (c *Client) TopHeadlines(ctx context.Context) ([]Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if c.cache != nil {
		if articles, ok := c.cache.Get(c.country); ok {
			return articles, nil
		}
	}

	q := url.Values{}
	q.Set("country", c.country)
	q.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s/v2/top-headlines?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call NewsAPI: %w", err)
	}
	defer resp.Body.Close()

	var parsed headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode NewsAPI response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Status != statusOK {
		return nil, fmt.Errorf("%w: %s %s", ErrBadStatus, parsed.Code, parsed.Message)
	}

	articles := parsed.Articles
	if len(articles) > c.limit {
		articles = articles[:c.limit]
	}
	if c.cache != nil {
		c.cache.Add(c.country, articles)
	}
	return articles, nil
}
