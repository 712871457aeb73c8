package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/models"
)

func TestCreateWorkspace(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	workspace, err := s.CreateWorkspace(context.Background(), user.ID, "Personal", nil)
	require.NoError(t, err)
	assert.Equal(t, "Personal", workspace.Name)
	assert.Equal(t, user.ID, workspace.OwnerID)
	assert.JSONEq(t, "{}", string(workspace.Settings))
}

func TestCreateWorkspaceWithSettings(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	settings := json.RawMessage(`{"theme":"dark"}`)

	workspace, err := s.CreateWorkspace(context.Background(), user.ID, "Personal", settings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(workspace.Settings))
}

func TestCreateWorkspaceEmptyName(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	_, err := s.CreateWorkspace(context.Background(), user.ID, "  ", nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestListWorkspacesOrderedByCreation(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	for _, name := range []string{"Work", "Personal", "Archive"} {
		_, err := s.CreateWorkspace(context.Background(), user.ID, name, nil)
		require.NoError(t, err)
	}

	workspaces, err := s.ListWorkspaces(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 4)

	for i := 1; i < len(workspaces); i++ {
		assert.False(t, workspaces[i].CreatedAt.Before(workspaces[i-1].CreatedAt))
	}
}

func TestListWorkspacesScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	alice, _ := registerUser(t, s, "alice@example.com")
	bob, _ := registerUser(t, s, "bob@example.com")

	_, err := s.CreateWorkspace(context.Background(), alice.ID, "Alice Only", nil)
	require.NoError(t, err)

	workspaces, err := s.ListWorkspaces(context.Background(), bob.ID)
	require.NoError(t, err)

	for _, workspace := range workspaces {
		assert.Equal(t, bob.ID, workspace.OwnerID)
	}
}

func TestRenameWorkspace(t *testing.T) {
	s := newTestStore(t)
	user, workspace := registerUser(t, s, "alice@example.com")

	renamed, err := s.RenameWorkspace(context.Background(), user.ID, workspace.ID, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)
	assert.Equal(t, workspace.ID, renamed.ID)
}

func TestRenameWorkspaceEmptyName(t *testing.T) {
	s := newTestStore(t)
	user, workspace := registerUser(t, s, "alice@example.com")

	_, err := s.RenameWorkspace(context.Background(), user.ID, workspace.ID, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

// Another user's workspace must look missing, never merely forbidden.
func TestWorkspaceAccessDeniedForNonOwner(t *testing.T) {
	s := newTestStore(t)
	_, aliceWorkspace := registerUser(t, s, "alice@example.com")
	bob, _ := registerUser(t, s, "bob@example.com")

	_, err := s.AuthorizeWorkspace(context.Background(), bob.ID, aliceWorkspace.ID, ActionRead)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = s.RenameWorkspace(context.Background(), bob.ID, aliceWorkspace.ID, "Stolen")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = s.DeleteWorkspace(context.Background(), bob.ID, aliceWorkspace.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestAuthorizeWorkspaceMissing(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	_, err := s.AuthorizeWorkspace(context.Background(), user.ID, uuid.New(), ActionRead)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteWorkspaceCascadesNotes(t *testing.T) {
	s := newTestStore(t)
	user, _ := registerUser(t, s, "alice@example.com")

	workspace, err := s.CreateWorkspace(context.Background(), user.ID, "Doomed", nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.CreateNote(context.Background(), user.ID, workspace.ID, "note", "body")
		require.NoError(t, err)
	}

	err = s.DeleteWorkspace(context.Background(), user.ID, workspace.ID)
	require.NoError(t, err)

	_, _, err = s.ListNotes(context.Background(), user.ID, workspace.ID, 1, 10)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	var orphans int64
	err = s.db.Model(&models.Note{}).Where("workspace_id = ?", workspace.ID).Count(&orphans).Error
	require.NoError(t, err)
	assert.Zero(t, orphans)
}

func TestDeleteLastWorkspaceRefused(t *testing.T) {
	s := newTestStore(t)
	user, workspace := registerUser(t, s, "alice@example.com")

	err := s.DeleteWorkspace(context.Background(), user.ID, workspace.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))

	workspaces, err := s.ListWorkspaces(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, workspaces, 1)
}
