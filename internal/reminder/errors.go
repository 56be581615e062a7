package reminder

import "errors"

// Domain-specific errors for the reminder package.
var (
	ErrEmptyText  = errors.New("reminder text is empty")
	ErrStoreWrite = errors.New("failed to persist reminders")
)
