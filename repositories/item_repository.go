package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) ByUUID(uuid string) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("uuid = ?", uuid).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) ByCategory(categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("category_id = ?", categoryID).
		Order("item_name ASC").
		Find(&items).Error
	return items, err
}

// PopularByRestaurant mengembalikan item sebuah restoran diurutkan berdasarkan
// berapa kali item itu dipesan.
func (r *ItemRepository) PopularByRestaurant(restaurantID uint, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.
		Joins("LEFT JOIN order_items ON order_items.item_id = items.id").
		Where("items.restaurant_id = ?", restaurantID).
		Group("items.id").
		Order("COUNT(order_items.id) DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
