// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ekocak/todo-service/internal/domain/item"
	"github.com/ekocak/todo-service/internal/platform/markdown"
	"github.com/ekocak/todo-service/internal/ports"
)

// Compile-time check that ItemService implements ports.ItemService.
var _ ports.ItemService = (*ItemService)(nil)

// ItemService implements ports.ItemService by coordinating the item
// repository and the enrichment client. It owns the create-time enrichment
// pipeline and keeps every repository call scoped to the authenticated owner.
type ItemService struct {
	items    ports.ItemRepository
	enricher ports.Enricher
	logger   *slog.Logger
}

// NewItemService creates an ItemService. The enricher expands descriptions on
// create; the logger is used for structured request/error logging.
func NewItemService(items ports.ItemRepository, enricher ports.Enricher, logger *slog.Logger) *ItemService {
	return &ItemService{
		items:    items,
		enricher: enricher,
		logger:   logger,
	}
}

// List returns all items owned by ownerID.
func (s *ItemService) List(ctx context.Context, ownerID string) ([]item.Item, error) {
	s.logger.InfoContext(ctx, "listing items")

	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return items, nil
}

// Get returns a single item by ID if it is owned by ownerID.
func (s *ItemService) Get(ctx context.Context, ownerID string, id int64) (*item.Item, error) {
	s.logger.InfoContext(ctx, "fetching item", slog.Int64("id", id))

	it, err := s.items.GetOwned(ctx, ownerID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch item",
			slog.String("operation", "Get"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return it, nil
}

// Create validates the item, expands its description through the enrichment
// client, and persists it under ownerID. The stored description is the
// flattened enrichment output; when enrichment fails the original
// description is stored unchanged. Validation applies to the caller's input,
// never to the enriched text.
func (s *ItemService) Create(ctx context.Context, ownerID string, it *item.Item) (*item.Item, error) {
	s.logger.InfoContext(ctx, "creating item", slog.String("title", it.Title))

	if err := it.Validate(); err != nil {
		return nil, err
	}

	it.OwnerID = ownerID
	it.Description = s.enrich(ctx, it.Description)

	if err := s.items.Create(ctx, it); err != nil {
		s.logger.ErrorContext(ctx, "failed to create item",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return it, nil
}

// Update validates and overwrites an owned item's mutable fields verbatim.
// The description is stored exactly as submitted; enrichment runs on create
// only.
func (s *ItemService) Update(ctx context.Context, ownerID string, id int64, it *item.Item) (*item.Item, error) {
	s.logger.InfoContext(ctx, "updating item", slog.Int64("id", id))

	if err := it.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.items.UpdateOwned(ctx, ownerID, id, it)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update item",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes an owned item.
func (s *ItemService) Delete(ctx context.Context, ownerID string, id int64) error {
	s.logger.InfoContext(ctx, "deleting item", slog.Int64("id", id))

	if err := s.items.DeleteOwned(ctx, ownerID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete item",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// enrich expands the description through the enrichment client and flattens
// the markdown answer to plain text. Enrichment is best-effort: any failure
// is logged at WARN and the original description is returned so that item
// creation never fails on a downstream outage.
func (s *ItemService) enrich(ctx context.Context, description string) string {
	expanded, err := s.enricher.Expand(ctx, description)
	if err != nil {
		s.logger.WarnContext(ctx, "enrichment failed, keeping original description",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return description
	}

	flattened := markdown.Flatten(expanded)
	if flattened == "" {
		s.logger.WarnContext(ctx, "enrichment returned empty text, keeping original description",
			slog.String("operation", "Create"),
		)
		return description
	}

	return flattened
}
