package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/domain/item"
	"github.com/ekocak/todo-service/internal/ports"
)

// Compile-time check that ItemRepository implements ports.ItemRepository.
var _ ports.ItemRepository = (*ItemRepository)(nil)

// DBTX is the subset of *sql.DB the repositories need, allowing tests to
// substitute a mock connection.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ItemRepository implements ports.ItemRepository against the items table.
// Every single-row statement filters on (id, owner_id) so a row owned by
// another user behaves exactly like a missing row.
type ItemRepository struct {
	db DBTX
}

// NewItemRepository creates an ItemRepository bound to db.
func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListByOwner returns all items with the given owner, oldest first.
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]item.Item, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id, created_at, updated_at
		FROM items
		WHERE owner_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		if err := scanItem(rows.Scan, &it); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// GetOwned returns the item matching both id and ownerID.
func (r *ItemRepository) GetOwned(ctx context.Context, ownerID string, id int64) (*item.Item, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id, created_at, updated_at
		FROM items
		WHERE id = $1 AND owner_id = $2`

	var it item.Item
	row := r.db.QueryRowContext(ctx, query, id, ownerID)
	if err := scanItem(row.Scan, &it); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching item: %w", err)
	}

	return &it, nil
}

// Create inserts the item and fills in the server-assigned ID and timestamps.
func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	query := `
		INSERT INTO items (title, description, priority, complete, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		it.Title, it.Description, it.Priority, it.Complete, it.OwnerID,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}

	return nil
}

// UpdateOwned overwrites the mutable fields of the row matching (id, ownerID)
// and returns the stored row. The RETURNING clause makes the existence check
// and the overwrite a single statement.
func (r *ItemRepository) UpdateOwned(ctx context.Context, ownerID string, id int64, it *item.Item) (*item.Item, error) {
	query := `
		UPDATE items
		SET title = $1, description = $2, priority = $3, complete = $4, updated_at = now()
		WHERE id = $5 AND owner_id = $6
		RETURNING id, title, description, priority, complete, owner_id, created_at, updated_at`

	var updated item.Item
	row := r.db.QueryRowContext(ctx, query,
		it.Title, it.Description, it.Priority, it.Complete, id, ownerID,
	)
	if err := scanItem(row.Scan, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return &updated, nil
}

// DeleteOwned removes the row matching (id, ownerID).
func (r *ItemRepository) DeleteOwned(ctx context.Context, ownerID string, id int64) error {
	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// scanItem reads one items row in column order into it.
func scanItem(scan func(dest ...any) error, it *item.Item) error {
	return scan(
		&it.ID, &it.Title, &it.Description, &it.Priority,
		&it.Complete, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt,
	)
}
