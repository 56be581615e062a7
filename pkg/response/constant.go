package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat matches the layout reminders are persisted with.
	DateTimeFormat = "2006-01-02 15:04:05"
)
