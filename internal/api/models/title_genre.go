package models

// TitleGenre is the explicit join entity behind the titles<->genres
// many-to-many association.
type TitleGenre struct {
	TitleID int64 `json:"title_id" gorm:"primaryKey"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey"`
}

func (TitleGenre) TableName() string {
	return "title_genres"
}
