package services

import (
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
)

const popularItemLimit = 5

type ItemService struct {
	items       *repositories.ItemRepository
	restaurants *repositories.RestaurantRepository
}

func NewItemService(items *repositories.ItemRepository, restaurants *repositories.RestaurantRepository) *ItemService {
	return &ItemService{items: items, restaurants: restaurants}
}

// PopularByRestaurant mengembalikan maksimal 5 item restoran yang paling
// sering dipesan.
func (s *ItemService) PopularByRestaurant(restaurantUUID string) ([]models.Item, error) {
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
	return s.items.PopularByRestaurant(restaurant.ID, popularItemLimit)
}
