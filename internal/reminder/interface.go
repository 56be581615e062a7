package reminder

import "context"

// UseCase defines the reminder store operations.
type UseCase interface {
	// Create appends a reminder and persists the full collection.
	// Unreadable persisted state is treated as empty; write failures return ErrStoreWrite.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns every reminder in creation order. Read failures yield an empty list.
	List(ctx context.Context) (ListOutput, error)

	// Clear replaces the persisted collection with an empty one.
	Clear(ctx context.Context) error
}
