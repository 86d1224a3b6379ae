package ports

import (
	"context"

	"github.com/ekocak/todo-service/internal/domain/item"
)

// ItemService defines the service port for owner-scoped to-do operations.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every operation takes the authenticated owner's identity. Lookups filter by
// (id, owner_id) in a single predicate, so an item owned by someone else is
// reported exactly like a missing one.
type ItemService interface {
	// List returns all items owned by ownerID. No pagination; ordering
	// follows the store default.
	List(ctx context.Context, ownerID string) ([]item.Item, error)

	// Get returns the item only if id exists and is owned by ownerID.
	// Returns domain.ErrNotFound otherwise.
	Get(ctx context.Context, ownerID string, id int64) (*item.Item, error)

	// Create validates the item, assigns OwnerID from the identity, replaces
	// the description with the flattened enrichment output, and persists.
	// Returns the stored item with its server-assigned ID. If enrichment
	// fails, the original description is kept.
	// Returns domain.ErrValidation if the item fails validation.
	Create(ctx context.Context, ownerID string, it *item.Item) (*item.Item, error)

	// Update overwrites Title, Description, Priority, and Complete verbatim
	// from it. The description is never re-enriched on update.
	// Returns domain.ErrNotFound if the item is absent or not owned.
	Update(ctx context.Context, ownerID string, id int64, it *item.Item) (*item.Item, error)

	// Delete permanently removes an owned item.
	// Returns domain.ErrNotFound if the item is absent or not owned.
	Delete(ctx context.Context, ownerID string, id int64) error
}

// AuthService defines the service port for account registration and login.
type AuthService interface {
	// Register creates an account with a hashed password.
	// Returns domain.ErrConflict if the username is taken.
	Register(ctx context.Context, username, password string) error

	// Login verifies credentials and returns a signed access token.
	// Returns domain.ErrUnauthorized on unknown username or wrong password.
	Login(ctx context.Context, username, password string) (string, error)
}
