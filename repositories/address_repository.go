package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) WithTx(tx *gorm.DB) *AddressRepository {
	return &AddressRepository{db: tx}
}

func (r *AddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

func (r *AddressRepository) ByUUID(uuid string) (*models.Address, error) {
	var address models.Address
	err := r.db.Preload("State").Where("uuid = ?", uuid).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// ActiveByCustomer mengembalikan alamat aktif milik customer, terbaru dahulu.
func (r *AddressRepository) ActiveByCustomer(customerID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Preload("State").
		Where("customer_id = ? AND active = ?", customerID, 1).
		Order("id DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) Delete(address *models.Address) error {
	return r.db.Delete(address).Error
}

func (r *AddressRepository) Deactivate(address *models.Address) error {
	address.Active = 0
	return r.db.Save(address).Error
}
