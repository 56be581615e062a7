package repository

import "errors"

var (
	ErrFailedToRead  = errors.New("failed to read reminders")
	ErrCorrupt       = errors.New("persisted reminders are malformed")
	ErrFailedToWrite = errors.New("failed to write reminders")
)
