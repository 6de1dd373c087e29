package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/service"
)

func newReviewService(reviewRepo *MockReviewRepository, titleRepo *MockTitleRepository) service.ReviewService {
	ratings := service.NewRatingService(reviewRepo, nil, 0, slog.Default())
	return service.NewReviewService(reviewRepo, titleRepo, ratings)
}

func TestReviewService_Create(t *testing.T) {
	actor := service.Actor{UserID: "author-1", Role: models.RoleUser}
	title := &models.Title{ID: 7, Name: "Some Title"}

	t.Run("Success", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		titleRepo.On("GetByID", mock.Anything, int64(7)).Return(title, nil).Once()
		reviewRepo.On("GetByTitleAndAuthor", mock.Anything, int64(7), "author-1").
			Return(nil, apperr.ErrNotFound).Once()
		reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Review).ID = 42
			}).Return(nil).Once()
		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(&models.Review{
			ID:       42,
			TitleID:  7,
			AuthorID: "author-1",
			Text:     "great",
			Score:    9,
			Author:   models.User{Username: "alice"},
		}, nil).Once()

		resp, err := svc.Create(context.Background(), 7, actor, dto.CreateReviewDTO{Text: "great", Score: 9})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "alice", resp.Author)
		assert.Equal(t, 9, resp.Score)
		reviewRepo.AssertExpectations(t)
		titleRepo.AssertExpectations(t)
	})

	t.Run("SecondReviewRejected", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		titleRepo.On("GetByID", mock.Anything, int64(7)).Return(title, nil).Once()
		reviewRepo.On("GetByTitleAndAuthor", mock.Anything, int64(7), "author-1").
			Return(&models.Review{ID: 1, TitleID: 7, AuthorID: "author-1"}, nil).Once()

		_, err := svc.Create(context.Background(), 7, actor, dto.CreateReviewDTO{Text: "again", Score: 5})
		assert.ErrorIs(t, err, apperr.ErrReviewExists)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RacingDuplicateSurfacesFromIndex", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		titleRepo.On("GetByID", mock.Anything, int64(7)).Return(title, nil).Once()
		reviewRepo.On("GetByTitleAndAuthor", mock.Anything, int64(7), "author-1").
			Return(nil, apperr.ErrNotFound).Once()
		reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
			Return(apperr.ErrReviewExists).Once()

		_, err := svc.Create(context.Background(), 7, actor, dto.CreateReviewDTO{Text: "race", Score: 5})
		assert.ErrorIs(t, err, apperr.ErrReviewExists)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		titleRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperr.ErrNotFound).Once()

		_, err := svc.Create(context.Background(), 99, actor, dto.CreateReviewDTO{Text: "x", Score: 5})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("ScoreOutOfRange", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		_, err := svc.Create(context.Background(), 7, actor, dto.CreateReviewDTO{Text: "x", Score: 11})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestReviewService_Update(t *testing.T) {
	stored := func() *models.Review {
		return &models.Review{
			ID: 42, TitleID: 7, AuthorID: "author-1", Text: "old", Score: 4,
			Author: models.User{Username: "alice"},
		}
	}

	t.Run("AuthorCanEdit", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored(), nil).Twice()
		reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil).Once()

		text := "better now"
		_, err := svc.Update(context.Background(), 7, 42,
			service.Actor{UserID: "author-1", Role: models.RoleUser},
			dto.UpdateReviewDTO{Text: &text})
		assert.NoError(t, err)
	})

	t.Run("StrangerDenied", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored(), nil).Once()

		text := "hijack"
		_, err := svc.Update(context.Background(), 7, 42,
			service.Actor{UserID: "someone-else", Role: models.RoleUser},
			dto.UpdateReviewDTO{Text: &text})
		assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
		reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ModeratorCanEdit", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored(), nil).Twice()
		reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil).Once()

		score := 2
		_, err := svc.Update(context.Background(), 7, 42,
			service.Actor{UserID: "mod-1", Role: models.RoleModerator},
			dto.UpdateReviewDTO{Score: &score})
		assert.NoError(t, err)
	})

	t.Run("WrongTitleScopeReadsAsNotFound", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored(), nil).Once()

		text := "misfiled"
		_, err := svc.Update(context.Background(), 1234, 42,
			service.Actor{UserID: "author-1", Role: models.RoleUser},
			dto.UpdateReviewDTO{Text: &text})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	stored := &models.Review{ID: 42, TitleID: 7, AuthorID: "author-1"}

	t.Run("ModeratorCanDelete", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil).Once()
		reviewRepo.On("Delete", mock.Anything, int64(42)).Return(nil).Once()

		err := svc.Delete(context.Background(), 7, 42, service.Actor{UserID: "mod-1", Role: models.RoleModerator})
		assert.NoError(t, err)
	})

	t.Run("StrangerDenied", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		titleRepo := new(MockTitleRepository)
		svc := newReviewService(reviewRepo, titleRepo)

		reviewRepo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil).Once()

		err := svc.Delete(context.Background(), 7, 42, service.Actor{UserID: "someone-else", Role: models.RoleUser})
		assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	})
}
