package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noteagent/noteagent/internal/store"
	"github.com/noteagent/noteagent/internal/types"
	"github.com/noteagent/noteagent/internal/utils"
)

type CreateNoteRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type UpdateNoteRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (h *Handlers) CreateNote(ctx *gin.Context) {
	var req CreateNoteRequest

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

	note, err := h.store.CreateNote(ctx.Request.Context(), userID, workspaceID, req.Title, req.Body)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toNoteResponse(note))
}

func (h *Handlers) GetNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, noteID, err := utils.GetWorkspaceNoteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.store.GetNote(ctx.Request.Context(), userID, workspaceID, noteID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toNoteResponse(note))
}

func (h *Handlers) ListNotes(ctx *gin.Context) {
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

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", "0"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page size"})
		return
	}

	notes, total, err := h.store.ListNotes(ctx.Request.Context(), userID, workspaceID, page, pageSize)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := types.NoteListResponse{
		Notes: make([]types.NoteResponse, 0, len(notes)),
		Total: total,
	}

	for i := range notes {
		response.Notes = append(response.Notes, toNoteResponse(&notes[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handlers) UpdateNote(ctx *gin.Context) {
	var req UpdateNoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, noteID, err := utils.GetWorkspaceNoteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.store.UpdateNote(ctx.Request.Context(), userID, workspaceID, noteID, store.NoteUpdate{
		Title: req.Title,
		Body:  req.Body,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toNoteResponse(note))
}

func (h *Handlers) DeleteNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, noteID, err := utils.GetWorkspaceNoteID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteNote(ctx.Request.Context(), userID, workspaceID, noteID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
