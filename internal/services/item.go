package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flagit/internal/apperr"
	"flagit/internal/auth"
	"flagit/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CreateItemParams carries the client-supplied fields of a new item. OwnerID
// is accepted from the payload because item creation is an unauthenticated
// operation; see DESIGN.md for the open question around that.
type CreateItemParams struct {
	Title   string
	URL     string
	Text    string
	OwnerID string
}

// ItemService orchestrates the item lifecycle and enforces the ownership
// rule on delete.
type ItemService struct {
	db     *gorm.DB
	policy *bluemonday.Policy
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{
		db:     db,
		policy: bluemonday.StrictPolicy(),
	}
}

// Create inserts the item together with its owner's implicit +1 vote. A new
// item always starts at VoteCount 1, even when no owner id was supplied.
func (s *ItemService) Create(ctx context.Context, p CreateItemParams) (*models.Item, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperr.ErrInvalidInput)
	}

	item := models.Item{
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		URL:       strings.TrimSpace(p.URL),
		Text:      strings.TrimSpace(s.policy.Sanitize(p.Text)),
		VoteCount: 1,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if item.OwnerID == "" {
			return nil
		}
		return tx.Create(&models.Vote{ItemID: item.ID, UserID: item.OwnerID, Direction: 1}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: item %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item, newest first.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an item. Only the owner may delete. Votes and comments
// under the item are left behind; cleaning them up is a known orphaning risk
// accepted here.
func (s *ItemService) Delete(ctx context.Context, id string, ident auth.Identity) error {
	var item models.Item
	err := s.db.WithContext(ctx).Select("id", "owner_id").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: item %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return err
	}

	if item.OwnerID != ident.UID {
		return fmt.Errorf("%w: caller is not the owner", apperr.ErrForbidden)
	}

	return s.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
