package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) ByName(name string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("coupon_name = ?", name).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) ByUUID(uuid string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("uuid = ?", uuid).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
