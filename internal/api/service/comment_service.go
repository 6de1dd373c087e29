package service

import (
	"context"
	"fmt"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
)

type CommentService interface {
	Create(ctx context.Context, titleID, reviewID int64, actor Actor, in dto.CreateCommentDTO) (*dto.CommentResponse, error)
	Update(ctx context.Context, titleID, reviewID, commentID int64, actor Actor, in dto.UpdateCommentDTO) (*dto.CommentResponse, error)
	Delete(ctx context.Context, titleID, reviewID, commentID int64, actor Actor) error
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*dto.CommentResponse, error)
	List(ctx context.Context, titleID, reviewID int64, page, pageSize int) (*dto.Paginated[dto.CommentResponse], error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID int64, actor Actor, in dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	if err := s.checkScope(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		AuthorID: actor.UserID,
		Text:     in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.CommentFromModel(comment), nil
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID int64, actor Actor, in dto.UpdateCommentDTO) (*dto.CommentResponse, error) {
	comment, err := s.scopedComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != actor.UserID && !actor.CanModerate() {
		return nil, apperr.ErrPermissionDenied
	}

	comment.Text = in.Text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return dto.CommentFromModel(comment), nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID int64, actor Actor) error {
	comment, err := s.scopedComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actor.UserID && !actor.CanModerate() {
		return apperr.ErrPermissionDenied
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*dto.CommentResponse, error) {
	comment, err := s.scopedComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	return dto.CommentFromModel(comment), nil
}

func (s *commentService) List(ctx context.Context, titleID, reviewID int64, page, pageSize int) (*dto.Paginated[dto.CommentResponse], error) {
	if err := s.checkScope(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, total, err := s.commentRepo.ListByReview(ctx, reviewID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.CommentFromModel(&comments[i]))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

// checkScope verifies the review exists and belongs to the given title. A
// review under a different title must read as not found so comments never
// leak across titles through mismatched path parameters.
func (s *commentService) checkScope(ctx context.Context, titleID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.TitleID != titleID {
		return fmt.Errorf("review %d under title %d: %w", reviewID, titleID, apperr.ErrNotFound)
	}
	return nil
}

func (s *commentService) scopedComment(ctx context.Context, titleID, reviewID, commentID int64) (*models.Comment, error) {
	if err := s.checkScope(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.ReviewID != reviewID {
		return nil, fmt.Errorf("comment %d under review %d: %w", commentID, reviewID, apperr.ErrNotFound)
	}
	return comment, nil
}
