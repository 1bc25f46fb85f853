package services

import (
	"ClaimTrack/models"
	"ClaimTrack/repositories"
	"ClaimTrack/utils"
	"context"
)

type ClaimService struct {
	repository *repositories.ClaimRepository
}

func NewClaimService(repository *repositories.ClaimRepository) *ClaimService {
	return &ClaimService{repository: repository}
}

func (s *ClaimService) Create(ctx context.Context, claim *models.Claim) error {
	if err := utils.ValidateClaim(claim); err != nil {
		return err
	}
	return s.repository.Create(ctx, claim)
}

func (s *ClaimService) GetByID(ctx context.Context, id uint) (*models.Claim, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ClaimService) Search(ctx context.Context, query, status string) ([]models.Claim, error) {
	return s.repository.Search(ctx, query, status)
}

func (s *ClaimService) Statuses(ctx context.Context) ([]string, error) {
	return s.repository.Statuses(ctx)
}

func (s *ClaimService) Update(ctx context.Context, claim *models.Claim) error {
	if err := utils.ValidateClaim(claim); err != nil {
		return err
	}
	return s.repository.Update(ctx, claim)
}

func (s *ClaimService) ToggleFlag(ctx context.Context, id uint) (*models.Claim, error) {
	return s.repository.ToggleFlag(ctx, id)
}

func (s *ClaimService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
