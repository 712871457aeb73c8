package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noteagent/noteagent/internal/apperrors"
	"github.com/noteagent/noteagent/internal/auth"
	"github.com/noteagent/noteagent/internal/models"
	"github.com/noteagent/noteagent/internal/store"
	"github.com/noteagent/noteagent/internal/types"
)

type Handlers struct {
	store  *store.Store
	tokens *auth.TokenService
}

func New(s *store.Store, tokens *auth.TokenService) *Handlers {
	return &Handlers{
		store:  s,
		tokens: tokens,
	}
}

// respondError maps store error kinds to HTTP statuses. Internal errors are
// logged with their cause and surfaced without detail.
func respondError(ctx *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.KindUnauthorized:
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.KindNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.KindConflict:
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Unexpected error handling request")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func toUserResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toWorkspaceResponse(workspace *models.Workspace) types.WorkspaceResponse {
	settings := json.RawMessage(workspace.Settings)

	if settings == nil {
		settings = json.RawMessage("{}")
	}

	return types.WorkspaceResponse{
		ID:        workspace.ID,
		Name:      workspace.Name,
		Settings:  settings,
		CreatedAt: workspace.CreatedAt,
	}
}

func toNoteResponse(note *models.Note) types.NoteResponse {
	return types.NoteResponse{
		ID:          note.ID,
		WorkspaceID: note.WorkspaceID,
		Title:       note.Title,
		Body:        note.Body,
		ContentHash: note.ContentHash,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}
