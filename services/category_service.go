package services

import (
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
)

type CategoryService struct {
	categories *repositories.CategoryRepository
	items      *repositories.ItemRepository
}

func NewCategoryService(categories *repositories.CategoryRepository, items *repositories.ItemRepository) *CategoryService {
	return &CategoryService{categories: categories, items: items}
}

// All mengembalikan semua kategori terurut alfabetis.
func (s *CategoryService) All() ([]models.Category, error) {
	return s.categories.All()
}

// ByUUID mengembalikan detail kategori beserta item di dalamnya.
func (s *CategoryService) ByUUID(categoryUUID string) (*models.Category, []models.Item, error) {
	if categoryUUID == "" {
		return nil, nil, apperrors.ErrCategoryIDEmpty
	}
	category, err := s.categories.ByUUID(categoryUUID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, apperrors.ErrCategoryNotFound
	}
	items, err := s.items.ByCategory(category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, items, nil
}
