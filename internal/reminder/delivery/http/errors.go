package http

import (
	"net/http"

	pkgErrors "voice-assistant/pkg/errors"
)

var errClearFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to clear reminders")
