// Package item defines the to-do item entity and its business rules.
package item

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ekocak/todo-service/internal/domain"
)

// Field length and range bounds enforced by Validate.
const (
	TitleMinLen = 3
	TitleMaxLen = 50

	DescriptionMinLen = 3
	DescriptionMaxLen = 1000

	PriorityMin = 1
	PriorityMax = 5
)

// Item represents a single to-do record owned by exactly one user.
//
// OwnerID is assigned from the authenticated identity at creation and is
// never client-supplied or changed afterwards. Description holds the
// enriched text after creation, which may exceed DescriptionMaxLen; the
// bound applies to client input only.
type Item struct {
	ID          int64
	Title       string
	Description string
	Priority    int
	Complete    bool
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for client-supplied fields. Returns a
// *domain.ValidationError (wrapping domain.ErrValidation) with per-field
// details, or nil if all rules pass. OwnerID and ID are server-assigned and
// not validated here.
func (i *Item) Validate() error {
	fields := make(map[string]string)

	if n := utf8.RuneCountInString(i.Title); n < TitleMinLen || n > TitleMaxLen {
		fields["title"] = fmt.Sprintf("must be %d-%d characters, got %d", TitleMinLen, TitleMaxLen, n)
	}
	if n := utf8.RuneCountInString(i.Description); n < DescriptionMinLen || n > DescriptionMaxLen {
		fields["description"] = fmt.Sprintf("must be %d-%d characters, got %d", DescriptionMinLen, DescriptionMaxLen, n)
	}
	if i.Priority < PriorityMin || i.Priority > PriorityMax {
		fields["priority"] = fmt.Sprintf("must be %d-%d, got %d", PriorityMin, PriorityMax, i.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
