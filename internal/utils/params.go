package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetWorkspaceID(ctx *gin.Context) (uuid.UUID, error) {
	workspaceIDStr := ctx.Param("workspace_id")

	if workspaceIDStr == "" {
		return uuid.Nil, errors.New("workspace ID not found")
	}

	workspaceID, err := uuid.Parse(workspaceIDStr)

	if err != nil {
		return uuid.Nil, errors.New("invalid workspace ID")
	}

	return workspaceID, nil
}

func GetNoteID(ctx *gin.Context) (uuid.UUID, error) {
	noteIDStr := ctx.Param("note_id")

	if noteIDStr == "" {
		return uuid.Nil, errors.New("note ID not found")
	}

	noteID, err := uuid.Parse(noteIDStr)

	if err != nil {
		return uuid.Nil, errors.New("invalid note ID")
	}

	return noteID, nil
}

func GetWorkspaceNoteID(ctx *gin.Context) (uuid.UUID, uuid.UUID, error) {
	workspaceID, err := GetWorkspaceID(ctx)

	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	noteID, err := GetNoteID(ctx)

	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return workspaceID, noteID, nil
}
