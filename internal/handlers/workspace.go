package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteagent/noteagent/internal/types"
	"github.com/noteagent/noteagent/internal/utils"
)

type CreateWorkspaceRequest struct {
	Name     string          `json:"name" binding:"required"`
	Settings json.RawMessage `json:"settings"`
}

type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handlers) CreateWorkspace(ctx *gin.Context) {
	var req CreateWorkspaceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspace, err := h.store.CreateWorkspace(ctx.Request.Context(), userID, req.Name, req.Settings)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toWorkspaceResponse(workspace))
}

func (h *Handlers) ListWorkspaces(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaces, err := h.store.ListWorkspaces(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.WorkspaceResponse, 0, len(workspaces))

	for i := range workspaces {
		response = append(response, toWorkspaceResponse(&workspaces[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handlers) RenameWorkspace(ctx *gin.Context) {
	var req RenameWorkspaceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := utils.GetWorkspaceID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.store.RenameWorkspace(ctx.Request.Context(), userID, workspaceID, req.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toWorkspaceResponse(workspace))
}

func (h *Handlers) DeleteWorkspace(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := utils.GetWorkspaceID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteWorkspace(ctx.Request.Context(), userID, workspaceID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
