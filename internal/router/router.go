package router

import (
	"net/http"

	"flagit/internal/auth"
	"flagit/internal/handlers"
	"flagit/internal/middleware"
	"flagit/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires CORS, authentication and all handlers onto the
// engine. The store handle and verifier are injected here; nothing reads
// them from package state.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, verifier auth.Verifier) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.Authenticate(verifier))

	// Handlers
	itemHandler := handlers.NewItemHandler(services.NewItemService(db))
	voteHandler := handlers.NewVoteHandler(services.NewVoteService(db))
	commentHandler := handlers.NewCommentHandler(services.NewCommentService(db))

	// Public Routes
	r.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "FlagIt backend running")
	})
	r.GET("/item/:id", itemHandler.Get)
	r.POST("/addItem", itemHandler.Create)
	r.GET("/item/:id/comments", commentHandler.List)
	r.GET("/item/:id/comment/:commentId/replies", commentHandler.ListReplies)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.RequireIdentity())
	{
		authorized.GET("/getItems", itemHandler.List)
		authorized.DELETE("/deleteItem/:id", itemHandler.Delete)
		authorized.POST("/item/:id/vote", voteHandler.Cast)
		authorized.POST("/item/:id/comment", commentHandler.Create)
	}
}
