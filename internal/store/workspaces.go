package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/models"
)

func (s *Store) CreateWorkspace(ctx context.Context, userID uuid.UUID, name string, settings json.RawMessage) (*models.Workspace, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperrors.InvalidInput("Workspace name is required")
	}

	workspace := models.Workspace{
		OwnerID: userID,
		Name:    name,
	}

	if settings != nil {
		workspace.Settings = datatypes.JSON(settings)
	}

	if err := s.db.WithContext(ctx).Create(&workspace).Error; err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "creating workspace"))
	}

	return &workspace, nil
}

// ListWorkspaces returns the user's own workspaces, oldest first.
func (s *Store) ListWorkspaces(ctx context.Context, userID uuid.UUID) ([]models.Workspace, error) {
	var workspaces []models.Workspace

	err := s.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Order("created_at ASC").
		Find(&workspaces).Error

	if err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "listing workspaces"))
	}

	return workspaces, nil
}

func (s *Store) RenameWorkspace(ctx context.Context, userID, workspaceID uuid.UUID, newName string) (*models.Workspace, error) {
	newName = strings.TrimSpace(newName)

	if newName == "" {
		return nil, apperrors.InvalidInput("Workspace name is required")
	}

	workspace, err := s.AuthorizeWorkspace(ctx, userID, workspaceID, ActionWrite)

	if err != nil {
		return nil, err
	}

	workspace.Name = newName

	if err := s.db.WithContext(ctx).Save(workspace).Error; err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "renaming workspace"))
	}

	return workspace, nil
}

// DeleteWorkspace removes a workspace and all its notes in one transaction.
// A user's last remaining workspace cannot be deleted.
func (s *Store) DeleteWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	workspace, err := s.AuthorizeWorkspace(ctx, userID, workspaceID, ActionWrite)

	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Workspace{}).Where("owner_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}

		if count <= 1 {
			return apperrors.InvalidInput("Cannot delete your only workspace")
		}

		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}

		return tx.Delete(workspace).Error
	})

	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindInternal {
			return err
		}
		return apperrors.Internal(pkgerrors.Wrap(err, "deleting workspace"))
	}

	return nil
}
