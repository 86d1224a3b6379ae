// Package user defines the account entity used for authentication.
package user

import (
	"strings"
	"time"

	"github.com/ekocak/todo-service/internal/domain"
)

// User represents a registered account. PasswordHash holds a bcrypt hash;
// the plaintext password never leaves the auth service.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Validate checks that the account fields required for registration are present.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if u.PasswordHash == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
