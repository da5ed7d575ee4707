package services

import (
	"context"
	"fmt"
	"strings"

	"flagit/internal/apperr"
	"flagit/internal/auth"
	"flagit/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CommentService creates and lists threaded comments on items. Replies are
// addressed by parent comment id; the parent is not required to exist when a
// reply is posted.
type CommentService struct {
	db     *gorm.DB
	policy *bluemonday.Policy
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		db:     db,
		policy: bluemonday.StrictPolicy(),
	}
}

// Post stores a comment on itemID, nested under parentID when given. Author
// fields are derived from the verified identity only; nothing author-related
// is taken from the payload.
func (s *CommentService) Post(ctx context.Context, itemID string, parentID *string, text string, ident auth.Identity) (string, error) {
	text = strings.TrimSpace(s.policy.Sanitize(text))
	if text == "" {
		return "", fmt.Errorf("%w: text is required", apperr.ErrInvalidInput)
	}
	if err := itemExists(s.db.WithContext(ctx), itemID); err != nil {
		return "", err
	}

	comment := models.Comment{
		ItemID:   itemID,
		ParentID: parentID,
		Text:     text,
		OwnerID:  ident.UID,
		Username: ident.Username(),
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}
	return comment.ID, nil
}

// List returns the item's top-level comments, oldest first.
func (s *CommentService) List(ctx context.Context, itemID string) ([]models.Comment, error) {
	if err := itemExists(s.db.WithContext(ctx), itemID); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("item_id = ? AND parent_id IS NULL", itemID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListReplies returns the replies nested under one comment, oldest first. A
// parent nobody replied to, including one that was never created, yields an
// empty slice rather than an error.
func (s *CommentService) ListReplies(ctx context.Context, itemID, commentID string) ([]models.Comment, error) {
	if err := itemExists(s.db.WithContext(ctx), itemID); err != nil {
		return nil, err
	}

	replies := make([]models.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("item_id = ? AND parent_id = ?", itemID, commentID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func itemExists(tx *gorm.DB, itemID string) error {
	var n int64
	if err := tx.Model(&models.Item{}).Where("id = ?", itemID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: item %s", apperr.ErrNotFound, itemID)
	}
	return nil
}
