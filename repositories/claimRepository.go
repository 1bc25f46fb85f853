package repositories

import (
	"ClaimTrack/cache"
	"ClaimTrack/database"
	"ClaimTrack/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClaimCacheExpiry = 24 * time.Hour
)

type ClaimRepository struct {
	cache *cache.Cache
}

func NewClaimRepository(cache *cache.Cache) *ClaimRepository {
	return &ClaimRepository{cache: cache}
}

// withClaimLock serializes mutations of a single claim across instances.
func (r *ClaimRepository) withClaimLock(ctx context.Context, id uint, fn func() error) error {
	lockKey := fmt.Sprintf("claim_lock:%d", id)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()
	return fn()
}

func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	if err := database.DB.Create(claim).Error; err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}
	return r.invalidate(ctx, claim.ID)
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*models.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getClaimCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var claim models.Claim
		if err := json.Unmarshal([]byte(cached), &claim); err == nil {
			return &claim, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get claim from cache: %v", err)
	}

	var claim models.Claim
	err = database.DB.Preload("Detail").First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	claimJSON, err := json.Marshal(claim)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claim: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, claimJSON, ClaimCacheExpiry); err != nil {
		log.Printf("Failed to set claim in cache: %v", err)
	}

	return &claim, nil
}

// Search lists claims newest-first, optionally filtering by a substring
// over claim_id/patient_name/payer and by a trimmed, case-insensitive
// status. Search results are not cached; the filter space is unbounded.
func (r *ClaimRepository) Search(ctx context.Context, query, status string) ([]models.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db := database.DB.WithContext(ctx).Model(&models.Claim{})
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("claim_id ILIKE ? OR patient_name ILIKE ? OR payer ILIKE ?", like, like, like)
	}
	if status != "" {
		db = db.Where("LOWER(TRIM(status)) = LOWER(?)", status)
	}

	var claims []models.Claim
	if err := db.Order("last_updated DESC").Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to search claims: %w", err)
	}
	return claims, nil
}

// Statuses returns the distinct trimmed non-blank status values observed
// in the data, sorted case-insensitively. The status set is dynamic;
// there is no fixed enumeration.
func (r *ClaimRepository) Statuses(ctx context.Context) ([]string, error) {
	var statuses []string
	err := database.DB.WithContext(ctx).
		Raw(`SELECT TRIM(status) FROM claim
		     WHERE status IS NOT NULL AND TRIM(status) <> ''
		     GROUP BY TRIM(status)
		     ORDER BY LOWER(TRIM(status))`).
		Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

func (r *ClaimRepository) Update(ctx context.Context, claim *models.Claim) error {
	return r.withClaimLock(ctx, claim.ID, func() error {
		if err := database.DB.Save(claim).Error; err != nil {
			return fmt.Errorf("failed to update claim: %w", err)
		}
		return r.invalidate(ctx, claim.ID)
	})
}

// ToggleFlag flips the review marker on a claim. This is the only code
// path that writes flagged; the importers never touch it.
func (r *ClaimRepository) ToggleFlag(ctx context.Context, id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.withClaimLock(ctx, id, func() error {
		if err := database.DB.First(&claim, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to find claim: %w", err)
		}
		if err := database.DB.Model(&claim).Update("flagged", !claim.Flagged).Error; err != nil {
			return fmt.Errorf("failed to toggle flag: %w", err)
		}
		return r.invalidate(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// Delete removes a claim and cascades to its detail and notes inside one
// transaction, notes and detail first to respect ownership.
func (r *ClaimRepository) Delete(ctx context.Context, id uint) error {
	return r.withClaimLock(ctx, id, func() error {
		var claim models.Claim
		if err := database.DB.First(&claim, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to find claim: %w", err)
		}
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.ClaimNote{}, "claim_id = ?", id).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.ClaimDetail{}, "claim_id = ?", id).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Claim{}, "id = ?", id).Error
		})
		if err != nil {
			return fmt.Errorf("failed to delete claim: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ClaimRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, r.getClaimCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete claim cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "claims_cache*")
}

func (r *ClaimRepository) getClaimCacheKey(id uint) string {
	return fmt.Sprintf("claim_cache:%d", id)
}
