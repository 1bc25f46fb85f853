package repositories

import (
	"ClaimTrack/cache"
	"ClaimTrack/database"
	"ClaimTrack/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DashboardCacheKey    = "dashboard_cache"
	DashboardCacheExpiry = 5 * time.Minute
)

// DashboardStats aggregates the headline numbers for the dashboard.
type DashboardStats struct {
	TotalClaims  int64               `json:"total_claims"`
	TotalFlagged int64               `json:"total_flagged"`
	SumBilled    decimal.Decimal     `json:"sum_billed"`
	SumPaid      decimal.Decimal     `json:"sum_paid"`
	AvgUnderpay  decimal.NullDecimal `json:"avg_underpay"`
}

// StatusCount is one row of the per-status claim tally.
type StatusCount struct {
	Status string `json:"status"`
	N      int64  `json:"n"`
}

// PayerSummary is one row of the top-payers breakdown.
type PayerSummary struct {
	Payer  string          `json:"payer"`
	N      int64           `json:"n"`
	Billed decimal.Decimal `json:"billed"`
	Paid   decimal.Decimal `json:"paid"`
}

// Dashboard bundles everything the dashboard endpoint returns.
type Dashboard struct {
	Stats        DashboardStats     `json:"stats"`
	StatusCounts []StatusCount      `json:"status_counts"`
	TopPayers    []PayerSummary     `json:"top_payers"`
	RecentNotes  []models.ClaimNote `json:"recent_notes"`
}

type DashboardRepository struct {
	cache *cache.Cache
	notes *ClaimNoteRepository
}

func NewDashboardRepository(cache *cache.Cache, notes *ClaimNoteRepository) *DashboardRepository {
	return &DashboardRepository{cache: cache, notes: notes}
}

// Get computes the dashboard aggregates, serving from cache when fresh.
func (r *DashboardRepository) Get(ctx context.Context) (*Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, DashboardCacheKey)
	if err == nil && cached != "" {
		var dash Dashboard
		if err := json.Unmarshal([]byte(cached), &dash); err == nil {
			return &dash, nil
		}
	} else if err != nil {
		log.Printf("Failed to get dashboard from cache: %v", err)
	}

	var dash Dashboard

	err = database.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*)                                        AS total_claims,
		       COUNT(*) FILTER (WHERE flagged)                 AS total_flagged,
		       COALESCE(SUM(amount), 0)                        AS sum_billed,
		       COALESCE(SUM(paid_amount), 0)                   AS sum_paid,
		       AVG(amount - paid_amount) FILTER (WHERE amount > paid_amount) AS avg_underpay
		FROM claim`).Scan(&dash.Stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate claims: %w", err)
	}

	err = database.DB.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS n
		FROM claim
		GROUP BY status
		ORDER BY n DESC
		LIMIT 10`).Scan(&dash.StatusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}

	err = database.DB.WithContext(ctx).Raw(`
		SELECT payer,
		       COUNT(*)                      AS n,
		       COALESCE(SUM(amount), 0)      AS billed,
		       COALESCE(SUM(paid_amount), 0) AS paid
		FROM claim
		GROUP BY payer
		ORDER BY n DESC
		LIMIT 10`).Scan(&dash.TopPayers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payers: %w", err)
	}

	dash.RecentNotes, err = r.notes.Recent(ctx, 8)
	if err != nil {
		return nil, err
	}

	dashJSON, err := json.Marshal(dash)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dashboard: %w", err)
	}
	if err := r.cache.Set(ctx, DashboardCacheKey, dashJSON, DashboardCacheExpiry); err != nil {
		log.Printf("Failed to set dashboard in cache: %v", err)
	}

	return &dash, nil
}

// Flagged lists every flagged claim, newest-updated first, for the digest
// email.
func (r *DashboardRepository) Flagged(ctx context.Context) ([]models.Claim, error) {
	var claims []models.Claim
	err := database.DB.WithContext(ctx).
		Where("flagged = ?", true).
		Order("last_updated DESC").
		Find(&claims).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged claims: %w", err)
	}
	return claims, nil
}
