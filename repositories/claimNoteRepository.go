package repositories

import (
	"ClaimTrack/cache"
	"ClaimTrack/database"
	"ClaimTrack/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ClaimNoteRepository struct {
	cache *cache.Cache
}

func NewClaimNoteRepository(cache *cache.Cache) *ClaimNoteRepository {
	return &ClaimNoteRepository{cache: cache}
}

// Create appends a note to a claim. Notes are immutable once written;
// there is no update path.
func (r *ClaimNoteRepository) Create(ctx context.Context, note *models.ClaimNote) error {
	var claim models.Claim
	if err := database.DB.First(&claim, "id = ?", note.ClaimRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("claim not found")
		}
		return fmt.Errorf("failed to find claim: %w", err)
	}
	if err := database.DB.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return r.cache.Delete(ctx, fmt.Sprintf("claim_notes_cache:%d", note.ClaimRef))
}

// ListByClaim returns a claim's notes newest-first.
func (r *ClaimNoteRepository) ListByClaim(ctx context.Context, claimID uint) ([]models.ClaimNote, error) {
	var notes []models.ClaimNote
	err := database.DB.WithContext(ctx).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username")
		}).
		Where("claim_id = ?", claimID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Recent returns the most recent notes across all claims for the
// dashboard feed.
func (r *ClaimNoteRepository) Recent(ctx context.Context, limit int) ([]models.ClaimNote, error) {
	var notes []models.ClaimNote
	err := database.DB.WithContext(ctx).
		Preload("Claim", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, claim_id, patient_name")
		}).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent notes: %w", err)
	}
	return notes, nil
}
