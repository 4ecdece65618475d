package services

import (
	"strings"

	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"gorm.io/gorm"
)

type RestaurantService struct {
	db          *gorm.DB
	restaurants *repositories.RestaurantRepository
	categories  *repositories.CategoryRepository
}

func NewRestaurantService(db *gorm.DB, restaurants *repositories.RestaurantRepository, categories *repositories.CategoryRepository) *RestaurantService {
	return &RestaurantService{db: db, restaurants: restaurants, categories: categories}
}

func (s *RestaurantService) All() ([]models.Restaurant, error) {
	return s.restaurants.All()
}

func (s *RestaurantService) ByUUID(restaurantUUID string) (*models.Restaurant, error) {
	if restaurantUUID == "" {
		return nil, apperrors.ErrRestaurantIDEmpty
	}
	restaurant, err := s.restaurants.ByUUID(restaurantUUID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperrors.ErrRestaurantNotFound
	}
	return restaurant, nil
}

// ByName mencari restoran yang namanya memuat substring (tanpa peduli huruf
// besar/kecil).
func (s *RestaurantService) ByName(name string) ([]models.Restaurant, error) {
	if name == "" {
		return nil, apperrors.ErrRestaurantNameEmpty
	}
	return s.restaurants.ByNameLike(strings.ToLower(name))
}

func (s *RestaurantService) ByCategory(categoryUUID string) ([]models.Restaurant, error) {
	if categoryUUID == "" {
		return nil, apperrors.ErrCategoryIDEmpty
	}
	category, err := s.categories.ByUUID(categoryUUID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return s.restaurants.ByCategory(category.ID)
}

// Rate menerima rating 1..5, menghitung ulang rata-rata berjalan dan menambah
// jumlah pemberi rating.
func (s *RestaurantService) Rate(restaurantUUID string, rating float64) (*models.Restaurant, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}
	restaurant, err := s.ByUUID(restaurantUUID)
	if err != nil {
		return nil, err
	}

	total := restaurant.CustomerRating*float64(restaurant.NumberCustomersRated) + rating
	restaurant.NumberCustomersRated++
	restaurant.CustomerRating = total / float64(restaurant.NumberCustomersRated)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.restaurants.WithTx(tx).Update(restaurant)
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}
