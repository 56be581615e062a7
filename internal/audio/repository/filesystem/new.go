package filesystem

import (
	"errors"
	"fmt"
	"os"

	"voice-assistant/internal/audio/repository"
	"voice-assistant/pkg/log"
)

type implStorage struct {
	dir string
	l   log.Logger
}

var _ repository.Storage = (*implStorage)(nil)

// New creates a directory-backed Storage, creating dir if needed.
func New(dir string, l log.Logger) (*implStorage, error) {
	if dir == "" {
		return nil, errors.New("audio/repository/filesystem: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &implStorage{dir: dir, l: l}, nil
}

func (s *implStorage) Dir() string {
	return s.dir
}
