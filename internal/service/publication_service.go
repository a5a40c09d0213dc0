package service

import (
	"context"

	"deptsite/internal/dto"
	"deptsite/internal/models"
	"deptsite/internal/repository"
)

type PublicationService struct {
	pubRepo  repository.PublicationRepository
	userRepo repository.UserRepository
}

func NewPublicationService(pubRepo repository.PublicationRepository, userRepo repository.UserRepository) *PublicationService {
	return &PublicationService{pubRepo: pubRepo, userRepo: userRepo}
}

// CreateForAuthor resolves the author by username and saves the publication
// under it. An unresolved author fails validation before anything is written.
//
// The publication row and the author's owned collection are persisted as two
// separate writes; there is no transaction spanning them.
func (s *PublicationService) CreateForAuthor(ctx context.Context, req *dto.PublicationCreateRequest) (*models.Publication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByUsername(ctx, req.AuthorUsername)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewValidationError("Invalid author username")
		}
		return nil, err
	}

	pub := req.ToPublication(author)
	if err := s.pubRepo.Save(ctx, &pub); err != nil {
		return nil, err
	}

	author.Publications = append(author.Publications, pub)
	if err := s.userRepo.Save(ctx, author); err != nil {
		return nil, err
	}
	return &pub, nil
}
