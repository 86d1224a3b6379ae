package dto

import (
	"strings"

	"github.com/ekocak/todo-service/internal/domain"
)

const msgRequired = "is required"

// CreateItemRequest represents the JSON body for creating a new to-do item.
// Priority is required; zero is outside the valid range so an absent field
// and an explicit zero are rejected alike.
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

// Validate checks that required fields are present. Range and length rules
// live on the domain entity. Returns a *domain.ValidationError if any
// checks fail.
func (r *CreateItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}
	if r.Priority == 0 {
		fields["priority"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateItemRequest represents the JSON body for replacing an existing item.
// Updates are full overwrites: every field is required and stored verbatim,
// including the description.
type UpdateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}
	if r.Priority == 0 {
		fields["priority"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CredentialsRequest represents the JSON body for both registration and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CredentialsRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
