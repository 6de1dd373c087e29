package service

import (
	"context"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/repository"
)

type CategoryService interface {
	List(ctx context.Context, search string, page, pageSize int) (*dto.Paginated[dto.CategoryResponse], error)
	Create(ctx context.Context, in dto.CreateCategoryDTO) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, slug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context, search string, page, pageSize int) (*dto.Paginated[dto.CategoryResponse], error) {
	categories, total, err := s.categoryRepo.List(ctx, search, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, dto.CategoryFromModel(c))
	}
	return dto.NewPaginated(responses, total, page, pageSize), nil
}

func (s *categoryService) Create(ctx context.Context, in dto.CreateCategoryDTO) (*dto.CategoryResponse, error) {
	category := in.ToModel()
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, err
	}
	resp := dto.CategoryFromModel(category)
	return &resp, nil
}

// Delete is blocked while a title references the category (protect
// semantics); the repository reports that as ErrProtected.
func (s *categoryService) Delete(ctx context.Context, slug string) error {
	return s.categoryRepo.Delete(ctx, slug)
}
