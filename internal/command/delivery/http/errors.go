package http

import (
	"errors"
	"net/http"

	"voice-assistant/internal/audio"
	pkgErrors "voice-assistant/pkg/errors"
)

var (
	errNoText          = pkgErrors.NewHTTPError(http.StatusBadRequest, "No text provided")
	errNoAudioFile     = pkgErrors.NewHTTPError(http.StatusBadRequest, "No audio file received.")
	errEmptyAudioFile  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Empty audio file received.")
	errAudioTooLarge   = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Audio file is too large.")
	errNotUnderstood   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Could not understand audio. Please speak more clearly and try again.")
	errSTTUnavailable  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Speech recognition service is unavailable. Please check your internet connection and try again.")
	errAudioProcessing = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Audio processing error. Please try again.")
)

// mapAudioError translates transcription errors into HTTP errors.
func (h *handler) mapAudioError(err error) error {
	switch {
	case errors.Is(err, audio.ErrEmptyAudio):
		return errEmptyAudioFile
	case errors.Is(err, audio.ErrNotUnderstood):
		return errNotUnderstood
	case errors.Is(err, audio.ErrRecognition), errors.Is(err, audio.ErrNoRecognizer):
		return errSTTUnavailable
	default:
		return errAudioProcessing
	}
}
