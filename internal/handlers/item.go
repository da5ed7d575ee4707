package handlers

import (
	"fmt"
	"net/http"

	"flagit/internal/apperr"
	"flagit/internal/middleware"
	"flagit/internal/services"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	items *services.ItemService
}

func NewItemHandler(items *services.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

type createItemRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Text    string `json:"text"`
	OwnerID string `json:"ownerId"`
}

// Get handles GET /item/:id
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// List handles GET /getItems
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /addItem
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err))
		return
	}

	item, err := h.items.Create(c.Request.Context(), services.CreateItemParams{
		Title:   req.Title,
		URL:     req.URL,
		Text:    req.Text,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": item.ID})
}

// Delete handles DELETE /deleteItem/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, apperr.ErrUnauthenticated)
		return
	}

	if err := h.items.Delete(c.Request.Context(), c.Param("id"), *ident); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
