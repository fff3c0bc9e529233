package store

import "context"

// Store is the durable set of tracked ticker symbols. Symbols are kept
// uppercase; callers normalize case before calling.
type Store interface {
	// List returns all tracked symbols. No ordering is guaranteed.
	List(ctx context.Context) ([]string, error)
	// Add inserts the symbol if absent and reports whether a row was
	// actually inserted. Adding a present symbol is a no-op.
	Add(ctx context.Context, symbol string) (bool, error)
	// Remove deletes the symbol if present and reports whether a row
	// was actually deleted. Removing an absent symbol is a no-op.
	Remove(ctx context.Context, symbol string) (bool, error)
	// Ping checks that the backing storage is reachable.
	Ping(ctx context.Context) error
	Close() error
}
