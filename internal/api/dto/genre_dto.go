package dto

import "reviewhub/internal/api/models"

// CreateGenreDTO used for POST /api/genres.
type CreateGenreDTO struct {
	Name string `json:"name" binding:"required,max=64"`
	Slug string `json:"slug" binding:"required,max=50,slug"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (d CreateGenreDTO) ToModel() models.Genre {
	return models.Genre{Name: d.Name, Slug: d.Slug}
}

func GenreFromModel(m models.Genre) GenreResponse {
	return GenreResponse{Name: m.Name, Slug: m.Slug}
}
