package repositories

import (
	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

// ByCustomer mengembalikan order milik customer, terbaru dahulu, lengkap
// dengan referensi yang dibutuhkan response.
func (r *OrderRepository) ByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Customer").
		Preload("Address").
		Preload("Address.State").
		Preload("Coupon").
		Preload("Payment").
		Preload("Items").
		Preload("Items.Item").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&orders).Error
	return orders, err
}

// CountByAddress menghitung order yang masih menunjuk sebuah alamat; dipakai
// untuk memutuskan hard delete vs soft delete.
func (r *OrderRepository) CountByAddress(addressID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("address_id = ?", addressID).Count(&count).Error
	return count, err
}
