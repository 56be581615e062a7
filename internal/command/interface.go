package command

import (
	"context"

	"voice-assistant/pkg/newsapi"
	"voice-assistant/pkg/openweather"
)

// UseCase turns an utterance into a response.
type UseCase interface {
	// Handle classifies the utterance and runs the matching handler. Recoverable
	// problems are reported in the response text; an error is returned only when
	// ctx is already done.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)
}

// WeatherLookup provides the current weather report.
type WeatherLookup interface {
	Current(ctx context.Context) (openweather.Report, error)
}

// NewsLookup provides the top headlines.
type NewsLookup interface {
	TopHeadlines(ctx context.Context) ([]newsapi.Article, error)
}
