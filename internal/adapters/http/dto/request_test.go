package dto_test

import (
	"errors"
	"testing"

	"github.com/ekocak/todo-service/internal/adapters/http/dto"
	"github.com/ekocak/todo-service/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateItemRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreateItemRequest{
				Title:       "buy groceries",
				Description: "milk, eggs, bread",
				Priority:    3,
			},
			wantErr: false,
		},
		{
			name: "valid request with complete set",
			req: dto.CreateItemRequest{
				Title:       "buy groceries",
				Description: "milk, eggs, bread",
				Priority:    1,
				Complete:    true,
			},
			wantErr: false,
		},
		{
			name: "empty title fails",
			req: dto.CreateItemRequest{
				Title:       "",
				Description: "some description",
				Priority:    3,
			},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "whitespace-only title fails",
			req: dto.CreateItemRequest{
				Title:       "   ",
				Description: "some description",
				Priority:    3,
			},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "empty description fails",
			req: dto.CreateItemRequest{
				Title:       "some title",
				Description: "",
				Priority:    3,
			},
			wantErr:   true,
			wantField: "description",
		},
		{
			name: "missing priority fails",
			req: dto.CreateItemRequest{
				Title:       "some title",
				Description: "some description",
			},
			wantErr:   true,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateItemRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := dto.CreateItemRequest{
		Title:       "",
		Description: "",
		Priority:    0,
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error with multiple failures")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}

	expectedFields := []string{"title", "description", "priority"}
	for _, field := range expectedFields {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
		}
	}

	if len(verr.Fields) != len(expectedFields) {
		t.Errorf("ValidationError.Fields has %d entries, want %d", len(verr.Fields), len(expectedFields))
	}
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.UpdateItemRequest{
				Title:       "new title",
				Description: "new description",
				Priority:    5,
			},
			wantErr: false,
		},
		{
			name: "empty title fails",
			req: dto.UpdateItemRequest{
				Title:       "",
				Description: "new description",
				Priority:    5,
			},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "empty description fails",
			req: dto.UpdateItemRequest{
				Title:       "new title",
				Description: "",
				Priority:    5,
			},
			wantErr:   true,
			wantField: "description",
		},
		{
			name: "missing priority fails",
			req: dto.UpdateItemRequest{
				Title:       "new title",
				Description: "new description",
			},
			wantErr:   true,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCredentialsRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CredentialsRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid credentials pass",
			req:     dto.CredentialsRequest{Username: "alice", Password: "s3cret"},
			wantErr: false,
		},
		{
			name:      "empty username fails",
			req:       dto.CredentialsRequest{Username: "", Password: "s3cret"},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "whitespace-only username fails",
			req:       dto.CredentialsRequest{Username: "  ", Password: "s3cret"},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "empty password fails",
			req:       dto.CredentialsRequest{Username: "alice", Password: ""},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
