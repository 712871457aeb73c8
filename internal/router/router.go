package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/noteagent/noteagent/internal/handlers"
)

func NewRouter(h *handlers.Handlers, requireAuth gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.GET("/me", requireAuth, h.Me)
		}

		workspaces := api.Group("/workspaces", requireAuth)
		{
			workspaces.POST("", h.CreateWorkspace)
			workspaces.GET("", h.ListWorkspaces)
			workspaces.PATCH("/:workspace_id", h.RenameWorkspace)
			workspaces.DELETE("/:workspace_id", h.DeleteWorkspace)

			// Note endpoints
			workspaces.POST("/:workspace_id/notes", h.CreateNote)
			workspaces.GET("/:workspace_id/notes", h.ListNotes)
			workspaces.GET("/:workspace_id/notes/:note_id", h.GetNote)
			workspaces.PATCH("/:workspace_id/notes/:note_id", h.UpdateNote)
			workspaces.DELETE("/:workspace_id/notes/:note_id", h.DeleteNote)
		}
	}

	return r
}
