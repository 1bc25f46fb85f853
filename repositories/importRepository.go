package repositories

import (
	"ClaimTrack/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ImportRepository implements importer.ClaimStore over GORM. The
// last_updated store invariant holds because the Claim model carries
// autoUpdateTime: every Create and Save refreshes it in the same write.
// The importer CLIs run without Redis, so this repository takes the
// database handle directly and bypasses the cache.
type ImportRepository struct {
	db *gorm.DB
}

func NewImportRepository(db *gorm.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

func (r *ImportRepository) GetByClaimID(ctx context.Context, claimID string) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).First(&claim, "claim_id = ?", claimID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up claim %q: %w", claimID, err)
	}
	return &claim, nil
}

func (r *ImportRepository) Create(ctx context.Context, claim *models.Claim) error {
	if err := r.db.WithContext(ctx).Create(claim).Error; err != nil {
		return fmt.Errorf("failed to create claim %q: %w", claim.ClaimID, err)
	}
	return nil
}

func (r *ImportRepository) Update(ctx context.Context, claim *models.Claim) error {
	if err := r.db.WithContext(ctx).Save(claim).Error; err != nil {
		return fmt.Errorf("failed to update claim %q: %w", claim.ClaimID, err)
	}
	return nil
}

func (r *ImportRepository) AllClaims(ctx context.Context) ([]models.Claim, error) {
	var claims []models.Claim
	if err := r.db.WithContext(ctx).Select("id, claim_id").Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// UpsertDetail replaces the detail owned by a claim wholesale rather than
// diffing fields.
func (r *ImportRepository) UpsertDetail(ctx context.Context, claimRef uint, cptCodes, denialReason string) error {
	var detail models.ClaimDetail
	err := r.db.WithContext(ctx).First(&detail, "claim_id = ?", claimRef).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		detail = models.ClaimDetail{ClaimRef: claimRef, CPTCodes: cptCodes, DenialReason: denialReason}
		if err := r.db.WithContext(ctx).Create(&detail).Error; err != nil {
			return fmt.Errorf("failed to create claim detail: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up claim detail: %w", err)
	}
	detail.CPTCodes = cptCodes
	detail.DenialReason = denialReason
	if err := r.db.WithContext(ctx).Save(&detail).Error; err != nil {
		return fmt.Errorf("failed to update claim detail: %w", err)
	}
	return nil
}

func (r *ImportRepository) DeleteAllDetails(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM claim_detail").Error; err != nil {
		return fmt.Errorf("failed to clear claim details: %w", err)
	}
	return nil
}

func (r *ImportRepository) DeleteAllClaims(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM claim_note").Error; err != nil {
		return fmt.Errorf("failed to clear claim notes: %w", err)
	}
	if err := r.db.WithContext(ctx).Exec("DELETE FROM claim").Error; err != nil {
		return fmt.Errorf("failed to clear claims: %w", err)
	}
	return nil
}
