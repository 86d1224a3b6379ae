package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/domain/user"
	"github.com/ekocak/todo-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// TokenIssuer signs an access token for the given user ID. Implemented by the
// token manager; narrowed to an interface here so tests can substitute a stub.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements ports.AuthService. Passwords are hashed with bcrypt
// before storage; login failures for unknown users and wrong passwords are
// indistinguishable to the caller.
type AuthService struct {
	users  ports.UserRepository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users ports.UserRepository, tokens TokenIssuer, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", username))

	if password == "" {
		return &domain.ValidationError{Fields: map[string]string{"password": domain.MsgRequired}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := u.Validate(); err != nil {
		return err
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.String("username", username),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// usernames and wrong passwords both map to domain.ErrUnauthorized so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	s.logger.InfoContext(ctx, "logging in user", slog.String("username", username))

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("unknown user: %w", domain.ErrUnauthorized)
		}
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "Login"),
			slog.String("username", username),
			slog.Any("error", err),
		)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("password mismatch: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}
