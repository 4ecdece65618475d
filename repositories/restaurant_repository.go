package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) WithTx(tx *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: tx}
}

// All mengembalikan semua restoran, rating tertinggi dahulu.
func (r *RestaurantRepository) All() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Preload("Address").Preload("Address.State").
		Order("customer_rating DESC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) ByUUID(uuid string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.Preload("Address").Preload("Address.State").
		Where("uuid = ?", uuid).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) ByNameLike(name string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Preload("Address").Preload("Address.State").
		Where("LOWER(restaurant_name) LIKE ?", "%"+name+"%").
		Order("restaurant_name ASC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) ByCategory(categoryID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db.Preload("Address").Preload("Address.State").
		Joins("JOIN items ON items.restaurant_id = restaurants.id").
		Where("items.category_id = ?", categoryID).
		Group("restaurants.id").
		Order("restaurant_name ASC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) Update(restaurant *models.Restaurant) error {
	return r.db.Save(restaurant).Error
}
