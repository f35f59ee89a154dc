package domain

import "context"

// KeyValue is the external persistent key-value store. The recipe
// collection is serialized as one JSON value under a fixed key;
// implementations can be file-based, in-memory, or anything else.
type KeyValue interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// RecipeStore persists recipes. List with an empty query returns every
// recipe; a non-empty query filters by case-insensitive substring over
// title, ingredient names, and tags.
type RecipeStore interface {
	List(ctx context.Context, query string) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Upsert(ctx context.Context, recipe *Recipe) (*Recipe, error)
	Delete(ctx context.Context, id string) error
	SetFavorite(ctx context.Context, id string, favorite bool) (*Recipe, error)
}

// DraftStash passes a RecipeDraft from the import flow to the form flow
// across a navigation boundary. Take consumes and clears the slot so a
// stale draft never resurfaces.
type DraftStash interface {
	Put(ctx context.Context, draft RecipeDraft) error
	Take(ctx context.Context) (*RecipeDraft, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, a TUI scrollback, or a desktop notification daemon.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
