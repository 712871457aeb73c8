package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/models"
)

// NoteUpdate carries a partial update; nil fields are left untouched.
type NoteUpdate struct {
	Title *string
	Body  *string
}

func (s *Store) CreateNote(ctx context.Context, userID, workspaceID uuid.UUID, title, body string) (*models.Note, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return nil, apperrors.InvalidInput("Note title is required")
	}

	workspace, err := s.AuthorizeWorkspace(ctx, userID, workspaceID, ActionWrite)

	if err != nil {
		return nil, err
	}

	note := models.Note{
		WorkspaceID: workspace.ID,
		Title:       title,
		Body:        body,
		ContentHash: hashContent(body),
	}

	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "creating note"))
	}

	return &note, nil
}

func (s *Store) GetNote(ctx context.Context, userID, workspaceID, noteID uuid.UUID) (*models.Note, error) {
	return s.AuthorizeNote(ctx, userID, workspaceID, noteID, ActionRead)
}

// ListNotes returns one page of a workspace's notes, most recent first, plus
// the total note count. Page numbering starts at 1; a pageSize of 0 selects
// the configured default.
func (s *Store) ListNotes(ctx context.Context, userID, workspaceID uuid.UUID, page, pageSize int) ([]models.Note, int64, error) {
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}

	if page < 1 {
		return nil, 0, apperrors.InvalidInput("Page must be at least 1")
	}

	if pageSize < 1 || pageSize > s.maxPageSize {
		return nil, 0, apperrors.InvalidInput("Page size out of allowed range")
	}

	if _, err := s.AuthorizeWorkspace(ctx, userID, workspaceID, ActionRead); err != nil {
		return nil, 0, err
	}

	var total int64

	err := s.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("workspace_id = ?", workspaceID).
		Count(&total).Error

	if err != nil {
		return nil, 0, apperrors.Internal(pkgerrors.Wrap(err, "counting notes"))
	}

	var notes []models.Note

	// Tie-break on id so pages stay stable when notes share a timestamp.
	err = s.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notes).Error

	if err != nil {
		return nil, 0, apperrors.Internal(pkgerrors.Wrap(err, "listing notes"))
	}

	return notes, total, nil
}

// UpdateNote applies a partial update and refreshes the note's updated_at.
// Concurrent updates are last-writer-wins; there is no optimistic locking.
func (s *Store) UpdateNote(ctx context.Context, userID, workspaceID, noteID uuid.UUID, update NoteUpdate) (*models.Note, error) {
	if update.Title == nil && update.Body == nil {
		return nil, apperrors.InvalidInput("No valid fields to update")
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, apperrors.InvalidInput("Note title is required")
	}

	note, err := s.AuthorizeNote(ctx, userID, workspaceID, noteID, ActionWrite)

	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		note.Title = strings.TrimSpace(*update.Title)
	}

	if update.Body != nil {
		note.Body = *update.Body
		note.ContentHash = hashContent(*update.Body)
	}

	if err := s.db.WithContext(ctx).Save(note).Error; err != nil {
		return nil, apperrors.Internal(pkgerrors.Wrap(err, "updating note"))
	}

	return note, nil
}

func (s *Store) DeleteNote(ctx context.Context, userID, workspaceID, noteID uuid.UUID) error {
	note, err := s.AuthorizeNote(ctx, userID, workspaceID, noteID, ActionWrite)

	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(note).Error; err != nil {
		return apperrors.Internal(pkgerrors.Wrap(err, "deleting note"))
	}

	return nil
}

func hashContent(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
