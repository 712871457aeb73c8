package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteagent/noteagent/internal/apperrors"
)

func TestRegisterAndVerifyCredentials(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	verified, err := s.VerifyCredentials(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
}

func TestRegisterCreatesDefaultWorkspace(t *testing.T) {
	s := newTestStore(t)

	_, workspace := registerUser(t, s, "alice@example.com")
	assert.Equal(t, DefaultWorkspaceName, workspace.Name)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Register(context.Background(), "  Alice@Example.COM ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = s.VerifyCredentials(context.Background(), "ALICE@example.com", "secret123")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "alice@example.com", "different123")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register(context.Background(), "alice@example.com", "short")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestRegisterRejectsEmptyEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register(context.Background(), "   ", "secret123")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

// Unknown accounts and wrong passwords must be indistinguishable to callers.
func TestVerifyCredentialsDoesNotLeakExistence(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)

	_, wrongPassword := s.VerifyCredentials(context.Background(), "alice@example.com", "wrongpass")
	_, unknownEmail := s.VerifyCredentials(context.Background(), "bob@example.com", "secret123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(wrongPassword))
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
