package handlers

import (
	"fmt"
	"net/http"

	"flagit/internal/apperr"
	"flagit/internal/middleware"
	"flagit/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// A pointer distinguishes a missing direction from an explicit 0; binding
// rejects non-integer values before the service runs.
type castVoteRequest struct {
	Direction *int `json:"direction"`
}

// Cast handles POST /item/:id/vote
func (h *VoteHandler) Cast(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, apperr.ErrUnauthenticated)
		return
	}

	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Direction == nil {
		respondError(c, fmt.Errorf("%w: numeric direction is required", apperr.ErrInvalidInput))
		return
	}

	if err := h.votes.Cast(c.Request.Context(), c.Param("id"), ident.UID, *req.Direction); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
