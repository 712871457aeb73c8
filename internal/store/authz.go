package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/models"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// allowed is the single ownership predicate behind every workspace and note
// access: the owner may do anything, everyone else nothing.
func allowed(actor, owner uuid.UUID, _ Action) bool {
	return actor == owner
}

// AuthorizeWorkspace loads a workspace and checks ownership. Missing and
// not-owned workspaces both return NotFound so non-owners cannot confirm a
// resource exists.
func (s *Store) AuthorizeWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, action Action) (*models.Workspace, error) {
	var workspace models.Workspace

	err := s.db.WithContext(ctx).First(&workspace, "id = ?", workspaceID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Workspace not found")
		}
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "fetching workspace"))
	}

	if !allowed(userID, workspace.OwnerID, action) {
		return nil, apperrors.NotFound("Workspace not found")
	}

	return &workspace, nil
}

// AuthorizeNote runs the workspace check, then loads the note scoped to that
// workspace.
func (s *Store) AuthorizeNote(ctx context.Context, userID, workspaceID, noteID uuid.UUID, action Action) (*models.Note, error) {
	if _, err := s.AuthorizeWorkspace(ctx, userID, workspaceID, action); err != nil {
		return nil, err
	}

	var note models.Note

	err := s.db.WithContext(ctx).Where("id = ? AND workspace_id = ?", noteID, workspaceID).First(&note).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Note not found")
		}
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "fetching note"))
	}

	return &note, nil
}
