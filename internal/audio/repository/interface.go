package repository

import "context"

// Storage holds artifact files by name.
type Storage interface {
	// Write stores data under name, replacing any previous content.
	Write(ctx context.Context, name string, data []byte) error
	// List returns the names of regular files in the store.
	List(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, name string) error
	// Dir is the directory served to clients.
	Dir() string
}
