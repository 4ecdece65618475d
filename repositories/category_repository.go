package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) ByUUID(uuid string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("uuid = ?", uuid).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
