package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"voice-assistant/internal/model"
	"voice-assistant/internal/reminder"
	"voice-assistant/pkg/newsapi"
	"voice-assistant/pkg/openweather"
)

func fixed(response string) handlerFunc {
	return func(context.Context, string) (string, *model.Reminder) {
		return response, nil
	}
}

func (uc *implUseCase) handleUnknown(_ context.Context, text string) (string, *model.Reminder) {
	return fmt.Sprintf(ResponseUnknownFormat, text), nil
}

func (uc *implUseCase) handleTime(context.Context, string) (string, *model.Reminder) {
	return fmt.Sprintf(ResponseTimeFormat, uc.now().In(uc.loc).Format(TimeLayout)), nil
}

func (uc *implUseCase) handleDate(context.Context, string) (string, *model.Reminder) {
	return fmt.Sprintf(ResponseDateFormat, uc.now().In(uc.loc).Format(DateLayout)), nil
}

func (uc *implUseCase) handleWeather(ctx context.Context, _ string) (string, *model.Reminder) {
	if uc.weather == nil {
		return ResponseWeatherNoKey, nil
	}

	report, err := uc.weather.Current(ctx)
	if errors.Is(err, openweather.ErrMissingAPIKey) {
		return ResponseWeatherNoKey, nil
	}
	if err != nil {
		uc.metrics.IncCollaboratorError(collaboratorWeather)
		uc.l.Warnf(ctx, "command.usecase.handleWeather: %v", err)
		return ResponseWeatherFailed, nil
	}

	return fmt.Sprintf(ResponseWeatherFormat,
		report.City, report.Description, formatDegrees(report.Temp), formatDegrees(report.FeelsLike)), nil
}

func (uc *implUseCase) handleNews(ctx context.Context, _ string) (string, *model.Reminder) {
	if uc.news == nil {
		return ResponseNewsNoKey, nil
	}

	articles, err := uc.news.TopHeadlines(ctx)
	if errors.Is(err, newsapi.ErrMissingAPIKey) {
		return ResponseNewsNoKey, nil
	}
	if err != nil {
		uc.metrics.IncCollaboratorError(collaboratorNews)
		uc.l.Warnf(ctx, "command.usecase.handleNews: %v", err)
		return ResponseNewsFailed, nil
	}
	if len(articles) == 0 {
		return ResponseNewsEmpty, nil
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Title != "" {
			titles = append(titles, a.Title)
		}
	}
	return ResponseNewsPrefix + strings.Join(titles, NewsHeadlineSeparator), nil
}

func (uc *implUseCase) handleReminder(ctx context.Context, text string) (string, *model.Reminder) {
	payload, ok := reminder.ExtractPayload(text)
	if !ok {
		return ResponseReminderNoMatch, nil
	}

	out, err := uc.reminders.Create(ctx, reminder.CreateInput{Text: payload})
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.handleReminder: %v", err)
		return ResponseReminderFailed, nil
	}

	rec := out.Reminder
	return fmt.Sprintf(ResponseReminderFormat, rec.Text), &rec
}

// formatDegrees drops a trailing ".0" so 12.0 reads as "12".
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
