package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/models"
)

// TitleFilter narrows a title listing. Zero values mean "no constraint".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

type TitleRepository interface {
	Create(ctx context.Context, title *models.Title) error
	Update(ctx context.Context, title *models.Title) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Title, error)
	List(ctx context.Context, filter TitleFilter, page, pageSize int) ([]models.Title, int64, error)
	ReplaceGenres(ctx context.Context, title *models.Title, genres []models.Genre) error
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(ctx context.Context, title *models.Title) error {
	if err := r.db.WithContext(ctx).Create(title).Error; err != nil {
		return fmt.Errorf("create title: %w", translate(err))
	}
	return nil
}

func (r *titleRepository) Update(ctx context.Context, title *models.Title) error {
	if err := r.db.WithContext(ctx).Omit("Genres").Save(title).Error; err != nil {
		return fmt.Errorf("update title: %w", translate(err))
	}
	return nil
}

// Delete removes a title. The RESTRICT constraint on reviews turns into
// ErrProtected while reviews still reference the title, so scored reviews are
// never orphaned silently.
func (r *titleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Select("Genres").Delete(&models.Title{ID: id})
	if result.Error != nil {
		return fmt.Errorf("delete title: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete title: %w", apperr.ErrNotFound)
	}
	return nil
}

func (r *titleRepository) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	var title models.Title
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Genres").
		First(&title, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &title, nil
}

func (r *titleRepository) List(ctx context.Context, filter TitleFilter, page, pageSize int) ([]models.Title, int64, error) {
	var titles []models.Title
	var total int64

	// Count and fetch each build their own statement. Count mutates the
	// select fields of the statement it runs on, so sharing one chained
	// query would leave the fetch selecting titles.id and nothing else.
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Title{})
		if filter.CategorySlug != "" {
			q = q.Joins("JOIN categories ON categories.id = titles.category_id").
				Where("categories.slug = ?", filter.CategorySlug)
		}
		if filter.GenreSlug != "" {
			q = q.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
				Joins("JOIN genres ON genres.id = title_genres.genre_id").
				Where("genres.slug = ?", filter.GenreSlug)
		}
		if filter.Name != "" {
			q = q.Where("titles.name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Year != 0 {
			q = q.Where("titles.year = ?", filter.Year)
		}
		return q
	}

	if err := base().Distinct("titles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := base().Distinct().
		Preload("Category").
		Preload("Genres").
		Order("titles.id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&titles).Error
	if err != nil {
		return nil, 0, err
	}

	return titles, total, nil
}

// ReplaceGenres swaps the full genre set of a title.
func (r *titleRepository) ReplaceGenres(ctx context.Context, title *models.Title, genres []models.Genre) error {
	if err := r.db.WithContext(ctx).Model(title).Association("Genres").Replace(genres); err != nil {
		return fmt.Errorf("replace genres: %w", err)
	}
	return nil
}
