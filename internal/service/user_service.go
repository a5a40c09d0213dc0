// Package service holds the write-path business rules between handlers and
// repositories.
package service

import (
	"context"

	"deptsite/internal/dto"
	"deptsite/internal/models"
	"deptsite/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	pubRepo  repository.PublicationRepository
}

func NewUserService(userRepo repository.UserRepository, pubRepo repository.PublicationRepository) *UserService {
	return &UserService{userRepo: userRepo, pubRepo: pubRepo}
}

// Create validates the request, resolves the publication identifiers and
// saves the new user together with its owned publications.
//
// Identifiers that do not resolve are silently dropped from the assembled
// collection rather than rejected.
func (s *UserService) Create(ctx context.Context, req *dto.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Designation != models.DesignationFaculty && req.Designation != models.DesignationResearcher {
		return nil, models.NewValidationError(`Designation should be "faculty" or "researcher"`)
	}

	pubs := make([]models.Publication, 0, len(req.Publications))
	for _, id := range req.Publications {
		pub, err := s.pubRepo.GetByID(ctx, id)
		if err != nil {
			if models.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		pubs = append(pubs, *pub)
	}

	user := req.ToUser(pubs)
	if err := s.userRepo.Save(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminLogin reports whether the submitted credentials grant the admin
// console. The credential is hardcoded; an empty password counts as absent
// and is accepted.
func (s *UserService) AdminLogin(req dto.AdminLoginRequest) bool {
	return req.Username == "admin" && (req.Password == "" || req.Password == "admin")
}
