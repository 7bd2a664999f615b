package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filecms/internal/credentials"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	creds := credentials.New(filepath.Join(t.TempDir(), "users.conf"))
	return NewAuthService(creds)
}

func TestAuthService_RegisterAndSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.Register(ctx, "alice", "s3cret"))

	assert.NoError(t, svc.SignIn(ctx, "alice", "s3cret"))
	assert.ErrorIs(t, svc.SignIn(ctx, "alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.SignIn(ctx, "nobody", "anything"), ErrInvalidCredentials)
}

func TestAuthService_SignInTrimsInput(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.Register(ctx, "alice", "s3cret"))
	assert.NoError(t, svc.SignIn(ctx, "  alice ", " s3cret\n"))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	assert.ErrorIs(t, svc.Register(ctx, "", "pw"), ErrNameRequired)
	assert.ErrorIs(t, svc.Register(ctx, "user", ""), ErrNameRequired)

	require.NoError(t, svc.Register(ctx, "bob", "pw"))
	assert.ErrorIs(t, svc.Register(ctx, "bob", "other"), ErrUserTaken)
}
