package services

import (
	"ClaimTrack/config"
	"ClaimTrack/models"
	"ClaimTrack/repositories"
	"ClaimTrack/utils"
	"context"
)

type DashboardService struct {
	repository *repositories.DashboardRepository
}

func NewDashboardService(repository *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{repository: repository}
}

func (s *DashboardService) Get(ctx context.Context) (*repositories.Dashboard, error) {
	return s.repository.Get(ctx)
}

func (s *DashboardService) FlaggedClaims(ctx context.Context) ([]models.Claim, error) {
	return s.repository.Flagged(ctx)
}

// SendFlaggedDigest emails the current flagged-claims list to the
// configured recipient and reports how many claims it covered.
func (s *DashboardService) SendFlaggedDigest(ctx context.Context, smtp config.SMTPConfig) (int, error) {
	claims, err := s.repository.Flagged(ctx)
	if err != nil {
		return 0, err
	}
	if err := utils.SendFlaggedDigest(smtp, claims); err != nil {
		return 0, err
	}
	return len(claims), nil
}
