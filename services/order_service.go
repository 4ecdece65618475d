package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"gorm.io/gorm"
)

type OrderService struct {
	db          *gorm.DB
	orders      *repositories.OrderRepository
	coupons     *repositories.CouponRepository
	payments    *repositories.PaymentRepository
	restaurants *repositories.RestaurantRepository
	items       *repositories.ItemRepository
	addresses   *repositories.AddressRepository
}

func NewOrderService(
	db *gorm.DB,
	orders *repositories.OrderRepository,
	coupons *repositories.CouponRepository,
	payments *repositories.PaymentRepository,
	restaurants *repositories.RestaurantRepository,
	items *repositories.ItemRepository,
	addresses *repositories.AddressRepository,
) *OrderService {
	return &OrderService{
		db:          db,
		orders:      orders,
		coupons:     coupons,
		payments:    payments,
		restaurants: restaurants,
		items:       items,
		addresses:   addresses,
	}
}

// PlaceOrderInput adalah satu permintaan checkout. Bill, discount dan harga
// per baris dipakai apa adanya dari klien, tanpa dihitung ulang di server.
type PlaceOrderInput struct {
	Bill         float64
	Discount     float64
	CouponUUID   string
	PaymentUUID  string
	AddressUUID  string
	RestaurantID string
	Items        []ItemQuantity
}

type ItemQuantity struct {
	ItemUUID string
	Quantity int
	Price    float64
}

func (s *OrderService) CouponByName(name string) (*models.Coupon, error) {
	if name == "" {
		return nil, apperrors.ErrCouponNameEmpty
	}
	coupon, err := s.coupons.ByName(name)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperrors.ErrCouponNotFound
	}
	return coupon, nil
}

func (s *OrderService) CouponByUUID(couponUUID string) (*models.Coupon, error) {
	coupon, err := s.coupons.ByUUID(couponUUID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperrors.ErrCouponIDInvalid
	}
	return coupon, nil
}

// OrdersForCustomer mengembalikan semua order milik customer, terbaru dahulu.
func (s *OrderService) OrdersForCustomer(customer *models.Customer) ([]models.Order, error) {
	return s.orders.ByCustomer(customer.ID)
}

// PlaceOrder menyelesaikan semua referensi (alamat, restoran, kupon, metode
// pembayaran, tiap item) sebelum menulis apa pun, lalu menyimpan order beserta
// baris itemnya dalam satu transaksi. Referensi yang tidak ditemukan
// menggagalkan seluruh order tanpa ada yang tersimpan.
func (s *OrderService) PlaceOrder(customer *models.Customer, input PlaceOrderInput) (*models.Order, error) {
	if input.AddressUUID == "" {
		return nil, apperrors.ErrAddressIDEmpty
	}
	address, err := s.addresses.ByUUID(input.AddressUUID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apperrors.ErrAddressNotFound
	}
	if address.CustomerID != customer.ID {
		return nil, apperrors.ErrAddressNotOwned
	}

	if input.RestaurantID == "" {
		return nil, apperrors.ErrRestaurantIDEmpty
	}
	restaurant, err := s.restaurants.ByUUID(input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperrors.ErrRestaurantNotFound
	}

	order := &models.Order{
		UUID:         uuid.NewString(),
		Bill:         input.Bill,
		Discount:     input.Discount,
		Date:         time.Now(),
		CustomerID:   customer.ID,
		AddressID:    address.ID,
		RestaurantID: restaurant.ID,
	}

	if input.CouponUUID != "" {
		coupon, err := s.CouponByUUID(input.CouponUUID)
		if err != nil {
			return nil, err
		}
		order.CouponID = &coupon.ID
	}

	if input.PaymentUUID != "" {
		payment, err := s.payments.ByUUID(input.PaymentUUID)
		if err != nil {
			return nil, err
		}
		if payment == nil {
			return nil, apperrors.ErrPaymentNotFound
		}
		order.PaymentID = &payment.ID
	}

	orderItems := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		item, err := s.items.ByUUID(line.ItemUUID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, apperrors.ErrItemNotFound
		}
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   item.ID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)
		if err := repo.Create(order); err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := repo.CreateItem(&orderItems[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = orderItems
	return order, nil
}
