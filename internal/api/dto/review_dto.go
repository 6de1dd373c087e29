package dto

import (
	"time"

	"reviewhub/internal/api/models"
)

// CreateReviewDTO used for POST /api/titles/:title_id/reviews. The author is
// always the authenticated caller; it cannot be supplied in the payload.
type CreateReviewDTO struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score" binding:"required,min=1,max=10"`
}

// UpdateReviewDTO used for PATCH .../reviews/:review_id (partial).
type UpdateReviewDTO struct {
	Text  *string `json:"text,omitempty"`
	Score *int    `json:"score,omitempty" binding:"omitempty,min=1,max=10"`
}

type ReviewResponse struct {
	ID      int64     `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ReviewFromModel(m *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:      m.ID,
		Author:  m.Author.Username,
		Text:    m.Text,
		Score:   m.Score,
		PubDate: m.PubDate,
	}
}
