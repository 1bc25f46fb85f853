package services

import (
	"ClaimTrack/models"
	"ClaimTrack/repositories"
	"ClaimTrack/utils"
	"context"
	"strings"
)

type ClaimNoteService struct {
	repository *repositories.ClaimNoteRepository
}

func NewClaimNoteService(repository *repositories.ClaimNoteRepository) *ClaimNoteService {
	return &ClaimNoteService{repository: repository}
}

// Add appends a note to a claim. The body is required; authorID is nil
// for anonymous notes.
func (s *ClaimNoteService) Add(ctx context.Context, claimID uint, authorID *int64, body string) (*models.ClaimNote, error) {
	body = strings.TrimSpace(body)
	if err := utils.ValidateNoteBody(body); err != nil {
		return nil, err
	}
	note := &models.ClaimNote{
		ClaimRef: claimID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.repository.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *ClaimNoteService) ListByClaim(ctx context.Context, claimID uint) ([]models.ClaimNote, error) {
	return s.repository.ListByClaim(ctx, claimID)
}
