package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repositories.NewOrderRepository(db),
		repositories.NewCouponRepository(db),
		repositories.NewPaymentRepository(db),
		repositories.NewRestaurantRepository(db),
		repositories.NewItemRepository(db),
		repositories.NewAddressRepository(db),
	)
}

// orderFixtures menyiapkan customer lengkap dengan alamat, restoran
// beserta satu item, kupon dan metode pembayaran.
type orderFixtures struct {
	customer   *models.Customer
	address    *models.Address
	restaurant *models.Restaurant
	item       *models.Item
	coupon     *models.Coupon
	payment    *models.Payment
}

func setupOrderFixtures(t *testing.T, db *gorm.DB, contactNumber string) orderFixtures {
	customerSvc := newCustomerService(db)
	addressSvc := newAddressService(db)

	customer := signupCustomer(t, customerSvc, contactNumber)
	state := createState(t, db, "Telangana")

	address, err := addressSvc.Save(validAddress(), state.UUID, customer)
	assert.NoError(t, err)

	restaurant := &models.Restaurant{UUID: uuid.NewString(), RestaurantName: "Dapur Tes"}
	assert.NoError(t, db.Create(restaurant).Error)

	category := &models.Category{UUID: uuid.NewString(), CategoryName: "Snacks"}
	assert.NoError(t, db.Create(category).Error)

	item := &models.Item{
		UUID:         uuid.NewString(),
		ItemName:     "Samosa",
		Price:        40,
		Type:         models.ItemTypeVeg,
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
	}
	assert.NoError(t, db.Create(item).Error)

	coupon := &models.Coupon{UUID: uuid.NewString(), CouponName: "TESTCOUPON" + contactNumber, Percent: 20}
	assert.NoError(t, db.Create(coupon).Error)

	payment := &models.Payment{UUID: uuid.NewString(), PaymentName: "Wallet " + contactNumber}
	assert.NoError(t, db.Create(payment).Error)

	return orderFixtures{
		customer:   customer,
		address:    address,
		restaurant: restaurant,
		item:       item,
		coupon:     coupon,
		payment:    payment,
	}
}

func TestPlaceOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	fx := setupOrderFixtures(t, db, "9770000001")

	order, err := svc.PlaceOrder(fx.customer, PlaceOrderInput{
		Bill:         96,
		Discount:     24,
		CouponUUID:   fx.coupon.UUID,
		PaymentUUID:  fx.payment.UUID,
		AddressUUID:  fx.address.UUID,
		RestaurantID: fx.restaurant.UUID,
		Items: []ItemQuantity{
			{ItemUUID: fx.item.UUID, Quantity: 3, Price: 40},
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.UUID)
	assert.Equal(t, fx.coupon.ID, *order.CouponID)
	assert.Equal(t, fx.payment.ID, *order.PaymentID)

	// Baris item ikut tersimpan
	var itemCount int64
	assert.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount)

	orders, err := svc.OrdersForCustomer(fx.customer)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.UUID, orders[0].UUID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, 3, orders[0].Items[0].Quantity)
}

func TestPlaceOrderOptionalCouponAndPayment(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	fx := setupOrderFixtures(t, db, "9770000002")

	order, err := svc.PlaceOrder(fx.customer, PlaceOrderInput{
		Bill:         40,
		AddressUUID:  fx.address.UUID,
		RestaurantID: fx.restaurant.UUID,
		Items: []ItemQuantity{
			{ItemUUID: fx.item.UUID, Quantity: 1, Price: 40},
		},
	})
	assert.NoError(t, err)
	assert.Nil(t, order.CouponID)
	assert.Nil(t, order.PaymentID)
}

func TestPlaceOrderUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	fx := setupOrderFixtures(t, db, "9770000003")

	base := PlaceOrderInput{
		Bill:         40,
		AddressUUID:  fx.address.UUID,
		RestaurantID: fx.restaurant.UUID,
		Items: []ItemQuantity{
			{ItemUUID: fx.item.UUID, Quantity: 1, Price: 40},
		},
	}

	tests := []struct {
		name    string
		mutate  func(*PlaceOrderInput)
		wantErr *apperrors.AppError
	}{
		{"address id empty", func(in *PlaceOrderInput) { in.AddressUUID = "" }, apperrors.ErrAddressIDEmpty},
		{"address unknown", func(in *PlaceOrderInput) { in.AddressUUID = uuid.NewString() }, apperrors.ErrAddressNotFound},
		{"restaurant id empty", func(in *PlaceOrderInput) { in.RestaurantID = "" }, apperrors.ErrRestaurantIDEmpty},
		{"restaurant unknown", func(in *PlaceOrderInput) { in.RestaurantID = uuid.NewString() }, apperrors.ErrRestaurantNotFound},
		{"coupon unknown", func(in *PlaceOrderInput) { in.CouponUUID = uuid.NewString() }, apperrors.ErrCouponIDInvalid},
		{"payment unknown", func(in *PlaceOrderInput) { in.PaymentUUID = uuid.NewString() }, apperrors.ErrPaymentNotFound},
		{"item unknown", func(in *PlaceOrderInput) { in.Items = []ItemQuantity{{ItemUUID: uuid.NewString(), Quantity: 1, Price: 40}} }, apperrors.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)
			_, err := svc.PlaceOrder(fx.customer, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Referensi yang gagal tidak boleh meninggalkan order setengah jadi
	var count int64
	assert.NoError(t, db.Model(&models.Order{}).Where("customer_id = ?", fx.customer.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderAddressNotOwned(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	fx := setupOrderFixtures(t, db, "9770000004")

	customerSvc := newCustomerService(db)
	other := signupCustomer(t, customerSvc, "9770000005")

	_, err := svc.PlaceOrder(other, PlaceOrderInput{
		Bill:         40,
		AddressUUID:  fx.address.UUID,
		RestaurantID: fx.restaurant.UUID,
	})
	assert.ErrorIs(t, err, apperrors.ErrAddressNotOwned)
}

func TestCouponByName(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	fx := setupOrderFixtures(t, db, "9770000006")

	_, err := svc.CouponByName("")
	assert.ErrorIs(t, err, apperrors.ErrCouponNameEmpty)

	_, err = svc.CouponByName("TIDAKADA")
	assert.ErrorIs(t, err, apperrors.ErrCouponNotFound)

	coupon, err := svc.CouponByName(fx.coupon.CouponName)
	assert.NoError(t, err)
	assert.Equal(t, fx.coupon.UUID, coupon.UUID)
	assert.Equal(t, 20, coupon.Percent)
}
