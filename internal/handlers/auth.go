package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteagent/noteagent/internal/types"
	"github.com/noteagent/noteagent/internal/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Register(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (h *Handlers) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.VerifyCredentials(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *Handlers) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": currentUser})
}
