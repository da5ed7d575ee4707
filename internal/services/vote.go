package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flagit/internal/apperr"
	"flagit/internal/models"

	"gorm.io/gorm"
)

// voteAttempts bounds the optimistic retry loop. Matches the retry budget of
// typical document-store transactions: conflicts are expected to be rare and
// short-lived, anything longer surfaces to the caller.
const voteAttempts = 5

// errStaleVote aborts a transaction whose read of the caller's vote row went
// stale before the conditional write landed.
var errStaleVote = errors.New("vote row changed concurrently")

// VoteService keeps Item.VoteCount equal to the sum of per-user vote
// directions for that item, under concurrent voters.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Cast records userID's vote on itemID. direction is +1, -1, or 0 to clear
// an earlier vote. Casting the current direction again is a no-op with no
// writes. userID must come from a verified identity, never from the request
// payload.
func (s *VoteService) Cast(ctx context.Context, itemID, userID string, direction int) error {
	if direction < -1 || direction > 1 {
		return fmt.Errorf("%w: direction must be -1, 0 or 1", apperr.ErrInvalidInput)
	}
	if userID == "" {
		return fmt.Errorf("%w: missing caller identity", apperr.ErrUnauthenticated)
	}

	var lastErr error
	for attempt := 0; attempt < voteAttempts; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return castOnce(tx, itemID, userID, direction)
		})
		if err == nil {
			return nil
		}
		if !retryableVoteErr(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: vote did not commit after %d attempts: %v", apperr.ErrConflict, voteAttempts, lastErr)
}

// castOnce is one transactional attempt: read the caller's current vote,
// compute the delta against the requested direction, then apply the vote row
// change and the counter increment together or not at all.
func castOnce(tx *gorm.DB, itemID, userID string, direction int) error {
	var item models.Item
	if err := tx.Select("id").First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: item %s", apperr.ErrNotFound, itemID)
		}
		return err
	}

	old := 0
	var vote models.Vote
	err := tx.Where("item_id = ? AND user_id = ?", itemID, userID).First(&vote).Error
	switch {
	case err == nil:
		old = vote.Direction
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no current vote
	default:
		return err
	}

	delta := direction - old
	if delta == 0 {
		return nil
	}

	// Compare-and-swap the vote row against the direction just read. If a
	// concurrent writer got there first the conditional write misses (or the
	// insert hits the primary key) and the whole transaction retries.
	switch {
	case old == 0:
		if err := tx.Create(&models.Vote{ItemID: itemID, UserID: userID, Direction: direction}).Error; err != nil {
			return err
		}
	case direction == 0:
		res := tx.Where("item_id = ? AND user_id = ? AND direction = ?", itemID, userID, old).
			Delete(&models.Vote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleVote
		}
	default:
		res := tx.Model(&models.Vote{}).
			Where("item_id = ? AND user_id = ? AND direction = ?", itemID, userID, old).
			Update("direction", direction)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleVote
		}
	}

	return tx.Model(&models.Item{}).Where("id = ?", itemID).
		UpdateColumn("vote_count", gorm.Expr("vote_count + ?", delta)).Error
}

// retryableVoteErr reports whether an aborted attempt may succeed on retry:
// our own stale-read marker, a duplicate vote insert, a Postgres
// serialization failure, or sqlite write contention.
func retryableVoteErr(err error) bool {
	if errors.Is(err, errStaleVote) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 40001") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
