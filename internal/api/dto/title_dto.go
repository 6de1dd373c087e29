package dto

import (
	"time"

	"reviewhub/internal/api/models"
)

// CreateTitleDTO used for POST /api/titles. Category and genres are
// referenced by slug; reads embed the full nested objects instead.
type CreateTitleDTO struct {
	Name        string   `json:"name" binding:"required,max=150"`
	Year        int      `json:"year" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,slug"`
	Genres      []string `json:"genres" binding:"omitempty,dive,slug"`
}

// UpdateTitleDTO used for PATCH /api/titles/:title_id (partial updates allowed).
type UpdateTitleDTO struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,max=150"`
	Year        *int      `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty" binding:"omitempty,slug"`
	Genres      *[]string `json:"genres,omitempty" binding:"omitempty,dive,slug"`
}

// TitleResponse embeds nested category/genre objects and the computed rating.
// Rating is null when the title has no reviews yet.
type TitleResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *float64         `json:"rating"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Genres      []GenreResponse  `json:"genres"`
	CreatedAt   time.Time        `json:"created_at"`
}

func TitleFromModel(m models.Title, rating *float64) TitleResponse {
	genres := make([]GenreResponse, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, GenreFromModel(g))
	}
	return TitleResponse{
		ID:          m.ID,
		Name:        m.Name,
		Year:        m.Year,
		Rating:      rating,
		Description: m.Description,
		Category:    CategoryFromModel(m.Category),
		Genres:      genres,
		CreatedAt:   m.CreatedAt,
	}
}
