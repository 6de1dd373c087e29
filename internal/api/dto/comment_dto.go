package dto

import (
	"time"

	"reviewhub/internal/api/models"
)

// CreateCommentDTO used for POST .../reviews/:review_id/comments.
type CreateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

// UpdateCommentDTO used for PATCH .../comments/:comment_id.
type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID      int64     `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
}

func CommentFromModel(m *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:      m.ID,
		Author:  m.Author.Username,
		Text:    m.Text,
		PubDate: m.PubDate,
	}
}
