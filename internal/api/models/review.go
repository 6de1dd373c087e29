package models

import "time"

// Review is one user's scored review of a title. The composite unique index
// on (title_id, author_id) is the source of truth for the one-review-per-
// author-per-title invariant: concurrent inserts race on the index, not on
// an application-level check.
type Review struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleID  int64     `json:"title_id" gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	AuthorID string    `json:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_title_author"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	Score    int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 10"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime"`

	// Deleting a title with reviews is blocked; deleting the author removes
	// their reviews.
	Title  Title `json:"-" gorm:"foreignKey:TitleID;constraint:OnDelete:RESTRICT;"`
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
