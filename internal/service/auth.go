package service

import (
	"context"
	"errors"
	"strings"

	"filecms/internal/credentials"
)

// CredentialStore defines the flat-file credential operations the auth
// service depends on.
type CredentialStore interface {
	// Verify reports whether password matches username's stored hash.
	// Unknown usernames report false; Verify never errors.
	Verify(username, password string) bool
	// Append registers a new user, failing with credentials.ErrUserExists
	// on duplicates.
	Append(username, password string) error
}

// AuthService defines authentication use cases.
type AuthService interface {
	// SignIn checks the submitted credentials. Inputs are trimmed before
	// comparison. Failure is always ErrInvalidCredentials.
	SignIn(ctx context.Context, username, password string) error

	// Register creates a new account. Empty fields fail with
	// ErrNameRequired, duplicates with ErrUserTaken.
	Register(ctx context.Context, username, password string) error
}

type authService struct {
	creds CredentialStore
}

// NewAuthService constructs an AuthService over the given credential store.
func NewAuthService(creds CredentialStore) AuthService {
	return &authService{creds: creds}
}

func (s *authService) SignIn(_ context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if !s.creds.Verify(username, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *authService) Register(_ context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrNameRequired
	}
	if err := s.creds.Append(username, password); err != nil {
		if errors.Is(err, credentials.ErrUserExists) {
			return ErrUserTaken
		}
		return err
	}
	return nil
}
