package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) All() ([]models.State, error) {
	var states []models.State
	err := r.db.Find(&states).Error
	return states, err
}

func (r *StateRepository) ByUUID(uuid string) (*models.State, error) {
	var state models.State
	err := r.db.Where("uuid = ?", uuid).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}
