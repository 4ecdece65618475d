package repositories

import (
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// WithTx mengikat repository ke sebuah transaksi.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepository) ByContactNumber(contactNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("contact_number = ?", contactNumber).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepository) CreateAuth(auth *models.CustomerAuth) error {
	return r.db.Create(auth).Error
}

func (r *CustomerRepository) AuthByAccessToken(accessToken string) (*models.CustomerAuth, error) {
	var auth models.CustomerAuth
	err := r.db.Preload("Customer").Where("access_token = ?", accessToken).First(&auth).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *CustomerRepository) UpdateAuth(auth *models.CustomerAuth) error {
	return r.db.Save(auth).Error
}
