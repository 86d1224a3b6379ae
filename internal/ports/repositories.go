package ports

import (
	"context"

	"github.com/ekocak/todo-service/internal/domain/item"
	"github.com/ekocak/todo-service/internal/domain/user"
)

// ItemRepository defines the storage port for to-do items. Implemented by the
// postgres adapter. All single-item queries carry the owner in the lookup
// predicate; there is no unscoped access path.
type ItemRepository interface {
	// ListByOwner returns all items with the given owner_id.
	ListByOwner(ctx context.Context, ownerID string) ([]item.Item, error)

	// GetOwned returns the item matching both id and ownerID, or
	// domain.ErrNotFound when no such row exists.
	GetOwned(ctx context.Context, ownerID string, id int64) (*item.Item, error)

	// Create inserts the item and fills in the server-assigned ID and
	// timestamps on the passed entity.
	Create(ctx context.Context, it *item.Item) error

	// UpdateOwned overwrites the four mutable fields of the row matching
	// (id, ownerID). Returns domain.ErrNotFound when no row matched.
	UpdateOwned(ctx context.Context, ownerID string, id int64, it *item.Item) (*item.Item, error)

	// DeleteOwned removes the row matching (id, ownerID). Returns
	// domain.ErrNotFound when no row matched.
	DeleteOwned(ctx context.Context, ownerID string, id int64) error
}

// UserRepository defines the storage port for accounts.
type UserRepository interface {
	// Create inserts the user. Returns domain.ErrConflict when the username
	// is already taken.
	Create(ctx context.Context, u *user.User) error

	// GetByUsername returns the user or domain.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
