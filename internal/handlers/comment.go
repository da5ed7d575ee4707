package handlers

import (
	"fmt"
	"net/http"

	"flagit/internal/apperr"
	"flagit/internal/middleware"
	"flagit/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type postCommentRequest struct {
	Text     string `json:"text"`
	ParentID string `json:"parentId"`
}

// Create handles POST /item/:id/comment
func (h *CommentHandler) Create(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, apperr.ErrUnauthenticated)
		return
	}

	var req postCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err))
		return
	}

	var parentID *string
	if req.ParentID != "" {
		parentID = &req.ParentID
	}

	id, err := h.comments.Post(c.Request.Context(), c.Param("id"), parentID, req.Text, *ident)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// List handles GET /item/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListReplies handles GET /item/:id/comment/:commentId/replies
func (h *CommentHandler) ListReplies(c *gin.Context) {
	replies, err := h.comments.ListReplies(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replies)
}
