package http

import (
	"errors"
	"net/http"

	"voice-assistant/internal/audio"
	pkgErrors "voice-assistant/pkg/errors"
)

var (
	errNoText      = pkgErrors.NewHTTPError(http.StatusBadRequest, "No text provided")
	errEmptyText   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Empty text provided")
	errSpeakFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate speech")
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, audio.ErrEmptyText) {
		return errEmptyText
	}
	return errSpeakFailed
}
