package dto

import "reviewhub/internal/api/models"

// CreateCategoryDTO used for POST /api/categories.
type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required,max=64"`
	Slug string `json:"slug" binding:"required,max=50,slug"`
}

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (d CreateCategoryDTO) ToModel() models.Category {
	return models.Category{Name: d.Name, Slug: d.Slug}
}

func CategoryFromModel(m models.Category) CategoryResponse {
	return CategoryResponse{Name: m.Name, Slug: m.Slug}
}
