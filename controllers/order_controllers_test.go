package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering-app/models"
)

// seedMenu membuat restoran dengan satu item plus kupon dan metode
// pembayaran untuk skenario checkout.
func seedMenu(t *testing.T, db *gorm.DB, suffix string) (restaurant *models.Restaurant, item *models.Item, coupon *models.Coupon, payment *models.Payment) {
	restaurant = &models.Restaurant{UUID: uuid.NewString(), RestaurantName: "Dapur " + suffix}
	assert.NoError(t, db.Create(restaurant).Error)

	category := &models.Category{UUID: uuid.NewString(), CategoryName: "Snacks " + suffix}
	assert.NoError(t, db.Create(category).Error)

	item = &models.Item{
		UUID:         uuid.NewString(),
		ItemName:     "Samosa",
		Price:        40,
		Type:         models.ItemTypeVeg,
		RestaurantID: restaurant.ID,
		CategoryID:   category.ID,
	}
	assert.NoError(t, db.Create(item).Error)

	coupon = &models.Coupon{UUID: uuid.NewString(), CouponName: "HEMAT" + suffix, Percent: 20}
	assert.NoError(t, db.Create(coupon).Error)

	payment = &models.Payment{UUID: uuid.NewString(), PaymentName: "Wallet " + suffix}
	assert.NoError(t, db.Create(payment).Error)
	return restaurant, item, coupon, payment
}

func TestPlaceOrderFlow(t *testing.T) {
	r, db := setupServer(t)
	restaurant, item, coupon, payment := seedMenu(t, db, "A")
	token := signupAndLogin(t, r, "9440000001")

	state := createTestState(t, db, "Tamil Nadu")
	w := doJSON(t, r, http.MethodPost, "/address", map[string]string{
		"flat_building_name": "3C, Puri Indah",
		"locality":           "Sudirman",
		"city":               "Jakarta",
		"pincode":            "560034",
		"state_uuid":         state.UUID,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	addressUUID := parseBody(t, w)["id"].(string)

	// Checkout
	w = doJSON(t, r, http.MethodPost, "/order", map[string]interface{}{
		"bill":          96,
		"discount":      24,
		"coupon_id":     coupon.UUID,
		"payment_id":    payment.UUID,
		"address_id":    addressUUID,
		"restaurant_id": restaurant.UUID,
		"item_quantities": []map[string]interface{}{
			{"item_id": item.UUID, "quantity": 3, "price": 40},
		},
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ORDER SUCCESSFULLY PLACED", parseBody(t, w)["status"])

	// Riwayat order memuat order barusan
	w = doJSON(t, r, http.MethodGet, "/order", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	orders := parseBody(t, w)["orders"].([]interface{})
	assert.Len(t, orders, 1)

	order := orders[0].(map[string]interface{})
	assert.Equal(t, float64(96), order["bill"])
	lines := order["item_quantities"].([]interface{})
	assert.Len(t, lines, 1)
}

func TestPlaceOrderUnknownItemPersistsNothing(t *testing.T) {
	r, db := setupServer(t)
	restaurant, _, _, _ := seedMenu(t, db, "B")
	token := signupAndLogin(t, r, "9440000002")

	state := createTestState(t, db, "West Bengal")
	w := doJSON(t, r, http.MethodPost, "/address", map[string]string{
		"flat_building_name": "3C, Puri Indah",
		"locality":           "Sudirman",
		"city":               "Jakarta",
		"pincode":            "560034",
		"state_uuid":         state.UUID,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	addressUUID := parseBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/order", map[string]interface{}{
		"bill":          40,
		"address_id":    addressUUID,
		"restaurant_id": restaurant.UUID,
		"item_quantities": []map[string]interface{}{
			{"item_id": uuid.NewString(), "quantity": 1, "price": 40},
		},
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INF-001", parseBody(t, w)["code"])

	// Tidak ada order yang tersimpan
	w = doJSON(t, r, http.MethodGet, "/order", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, parseBody(t, w)["orders"])
}

func TestGetCoupon(t *testing.T) {
	r, db := setupServer(t)
	_, _, coupon, _ := seedMenu(t, db, "C")
	token := signupAndLogin(t, r, "9440000003")

	w := doJSON(t, r, http.MethodGet, "/order/coupon/TIDAKADA", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CPF-001", parseBody(t, w)["code"])

	w = doJSON(t, r, http.MethodGet, "/order/coupon/"+coupon.CouponName, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, coupon.CouponName, body["coupon_name"])
	assert.Equal(t, float64(20), body["percent"])
}

func TestGetPaymentMethods(t *testing.T) {
	r, db := setupServer(t)
	seedMenu(t, db, "D")

	w := doJSON(t, r, http.MethodGet, "/payment", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, parseBody(t, w)["payment_methods"])
}
