package service

import (
	"context"
	"errors"
	"fmt"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
)

type ReviewService interface {
	Create(ctx context.Context, titleID int64, actor Actor, in dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	Update(ctx context.Context, titleID, reviewID int64, actor Actor, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error
	Get(ctx context.Context, titleID, reviewID int64) (*dto.ReviewResponse, error)
	List(ctx context.Context, titleID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
	ratings    RatingService
}

func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo repository.TitleRepository, ratings RatingService) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
		ratings:    ratings,
	}
}

func (s *reviewService) Create(ctx context.Context, titleID int64, actor Actor, in dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	if in.Score < 1 || in.Score > 10 {
		return nil, apperr.Validationf("score %d is out of range: must be between 1 and 10", in.Score)
	}

	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("title %d: %w", titleID, apperr.ErrNotFound)
		}
		return nil, err
	}

	// Fast path only: the unique index enforces the invariant when two
	// creates race past this check.
	if _, err := s.reviewRepo.GetByTitleAndAuthor(ctx, titleID, actor.UserID); err == nil {
		return nil, apperr.ErrReviewExists
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	review := &models.Review{
		TitleID:  titleID,
		AuthorID: actor.UserID,
		Text:     in.Text,
		Score:    in.Score,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.ratings.Invalidate(ctx, titleID)

	// Reload with the author for the response.
	review, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewFromModel(review), nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, actor Actor, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	review, err := s.scopedReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if review.AuthorID != actor.UserID && !actor.CanModerate() {
		return nil, apperr.ErrPermissionDenied
	}

	if in.Text != nil {
		review.Text = *in.Text
	}
	if in.Score != nil {
		if *in.Score < 1 || *in.Score > 10 {
			return nil, apperr.Validationf("score %d is out of range: must be between 1 and 10", *in.Score)
		}
		review.Score = *in.Score
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.ratings.Invalidate(ctx, titleID)

	review, err = s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewFromModel(review), nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, actor Actor) error {
	review, err := s.scopedReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if review.AuthorID != actor.UserID && !actor.CanModerate() {
		return apperr.ErrPermissionDenied
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.ratings.Invalidate(ctx, titleID)
	return nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.scopedReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewFromModel(review), nil
}

func (s *reviewService) List(ctx context.Context, titleID int64, page, pageSize int) (*dto.Paginated[dto.ReviewResponse], error) {
	if _, err := s.titleRepo.GetByID(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, total, err := s.reviewRepo.ListByTitle(ctx, titleID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.ReviewFromModel(&reviews[i]))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

// scopedReview loads a review and verifies it belongs to the given title.
// A review that exists under a different title is not found, not a valid
// scope.
func (s *reviewService) scopedReview(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.TitleID != titleID {
		return nil, fmt.Errorf("review %d under title %d: %w", reviewID, titleID, apperr.ErrNotFound)
	}
	return review, nil
}
