package service

import (
	"context"
	"testing"

	"deptsite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub implements repository.UserRepository with overridable
// function fields.
type userRepoStub struct {
	getByUsernameFn     func(ctx context.Context, username string) (*models.User, error)
	listByDesignationFn func(ctx context.Context, designation string) ([]models.User, error)
	listFn              func(ctx context.Context) ([]models.User, error)
	saveFn              func(ctx context.Context, user *models.User) error
	deleteFn            func(ctx context.Context, id uint) error
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", username)
		},
		listByDesignationFn: func(_ context.Context, _ string) ([]models.User, error) {
			return nil, nil
		},
		listFn: func(_ context.Context) ([]models.User, error) { return nil, nil },
		saveFn: func(_ context.Context, _ *models.User) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) ListByDesignation(ctx context.Context, designation string) ([]models.User, error) {
	return s.listByDesignationFn(ctx, designation)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func (s *userRepoStub) Save(ctx context.Context, user *models.User) error {
	return s.saveFn(ctx, user)
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// pubRepoStub implements repository.PublicationRepository with overridable
// function fields.
type pubRepoStub struct {
	getByIDFn              func(ctx context.Context, id uint) (*models.Publication, error)
	listFn                 func(ctx context.Context) ([]models.Publication, error)
	listByAuthorUsernameFn func(ctx context.Context, username string) ([]models.Publication, error)
	saveFn                 func(ctx context.Context, pub *models.Publication) error
}

func noopPubRepo() *pubRepoStub {
	return &pubRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Publication, error) {
			return nil, models.NewNotFoundError("Publication", id)
		},
		listFn: func(_ context.Context) ([]models.Publication, error) { return nil, nil },
		listByAuthorUsernameFn: func(_ context.Context, _ string) ([]models.Publication, error) {
			return nil, nil
		},
		saveFn: func(_ context.Context, _ *models.Publication) error { return nil },
	}
}

func (s *pubRepoStub) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	return s.getByIDFn(ctx, id)
}

func (s *pubRepoStub) List(ctx context.Context) ([]models.Publication, error) {
	return s.listFn(ctx)
}

func (s *pubRepoStub) ListByAuthorUsername(ctx context.Context, username string) ([]models.Publication, error) {
	return s.listByAuthorUsernameFn(ctx, username)
}

func (s *pubRepoStub) Save(ctx context.Context, pub *models.Publication) error {
	return s.saveFn(ctx, pub)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
