package controllers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering-app/config"
	"github.com/yeremiapane/food-ordering-app/controllers"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"github.com/yeremiapane/food-ordering-app/router"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

// setupTestDB menggunakan SQLite in-memory untuk testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.State{},
		&models.Customer{},
		&models.CustomerAuth{},
		&models.Address{},
		&models.Restaurant{},
		&models.Category{},
		&models.Item{},
		&models.Coupon{},
		&models.Payment{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setupServer merakit router lengkap seperti main, di atas DB test.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db := setupTestDB(t)

	customerRepo := repositories.NewCustomerRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	stateRepo := repositories.NewStateRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	customerService := services.NewCustomerService(db, customerRepo)
	addressService := services.NewAddressService(db, addressRepo, stateRepo, orderRepo)
	orderService := services.NewOrderService(db, orderRepo, couponRepo, paymentRepo, restaurantRepo, itemRepo, addressRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	restaurantService := services.NewRestaurantService(db, restaurantRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo, itemRepo)
	itemService := services.NewItemService(itemRepo, restaurantRepo)

	cfg := &config.Config{Port: "8080", GinMode: gin.TestMode, CORSOrigin: "*"}

	r := router.SetupRouter(cfg, customerService, router.Controllers{
		Customer:   controllers.NewCustomerController(customerService),
		Address:    controllers.NewAddressController(addressService),
		Order:      controllers.NewOrderController(orderService),
		Payment:    controllers.NewPaymentController(paymentService),
		Restaurant: controllers.NewRestaurantController(restaurantService),
		Category:   controllers.NewCategoryController(categoryService),
		Item:       controllers.NewItemController(itemService),
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// signupAndLogin mendaftarkan customer baru lalu login, mengembalikan token.
func signupAndLogin(t *testing.T, r *gin.Engine, contactNumber string) string {
	w := doJSON(t, r, http.MethodPost, "/customer/signup", map[string]string{
		"first_name":     "Budi",
		"last_name":      "Santoso",
		"email_address":  "budi@example.com",
		"contact_number": contactNumber,
		"password":       "Secret1!",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	req, err := http.NewRequest(http.MethodPost, "/customer/login", nil)
	assert.NoError(t, err)
	credentials := base64.StdEncoding.EncodeToString([]byte(contactNumber + ":Secret1!"))
	req.Header.Set("Authorization", "Basic "+credentials)

	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	assert.Equal(t, http.StatusOK, lw.Code)

	token := lw.Header().Get("access-token")
	assert.NotEmpty(t, token)
	return token
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	r, _ := setupServer(t)

	// Signup
	w := doJSON(t, r, http.MethodPost, "/customer/signup", map[string]string{
		"first_name":     "Budi",
		"email_address":  "budi@example.com",
		"contact_number": "9660000001",
		"password":       "Secret1!",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, "CUSTOMER CREATED SUCCESSFULLY", body["status"])
	assert.NotEmpty(t, body["id"])

	// Login
	req, err := http.NewRequest(http.MethodPost, "/customer/login", nil)
	assert.NoError(t, err)
	credentials := base64.StdEncoding.EncodeToString([]byte("9660000001:Secret1!"))
	req.Header.Set("Authorization", "Basic "+credentials)

	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	assert.Equal(t, http.StatusOK, lw.Code)

	token := lw.Header().Get("access-token")
	assert.NotEmpty(t, token)
	loginBody := parseBody(t, lw)
	assert.Equal(t, "LOGGED IN SUCCESSFULLY", loginBody["message"])
	assert.Equal(t, "9660000001", loginBody["contact_number"])

	// Logout
	ow := doJSON(t, r, http.MethodPost, "/customer/logout", nil, token)
	assert.Equal(t, http.StatusOK, ow.Code)
	assert.Equal(t, "LOGGED OUT SUCCESSFULLY", parseBody(t, ow)["message"])

	// Token bekas logout ditolak
	dw := doJSON(t, r, http.MethodPost, "/customer/logout", nil, token)
	assert.Equal(t, http.StatusForbidden, dw.Code)
	assert.Equal(t, "ATHR-002", parseBody(t, dw)["code"])
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/customer/signup", map[string]string{
		"first_name":     "",
		"email_address":  "budi@example.com",
		"contact_number": "9660000002",
		"password":       "Secret1!",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SGR-005", parseBody(t, w)["code"])
}

func TestLoginRequiresBasicHeader(t *testing.T) {
	r, _ := setupServer(t)

	req, err := http.NewRequest(http.MethodPost, "/customer/login", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ATH-004", parseBody(t, w)["code"])
}

func TestProtectedRouteRequiresBearer(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/order", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ATHR-005", parseBody(t, w)["code"])
}

func TestUpdateCustomer(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "9660000003")

	// First name kosong ditolak
	w := doJSON(t, r, http.MethodPut, "/customer", map[string]string{
		"first_name": "",
		"last_name":  "Wijaya",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UCR-002", parseBody(t, w)["code"])

	w = doJSON(t, r, http.MethodPut, "/customer", map[string]string{
		"first_name": "Bambang",
		"last_name":  "Wijaya",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, "CUSTOMER DETAILS UPDATED SUCCESSFULLY", body["status"])
	assert.Equal(t, "Bambang", body["first_name"])
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	r, _ := setupServer(t)
	token := signupAndLogin(t, r, "9660000004")

	// Password lama salah
	w := doJSON(t, r, http.MethodPut, "/customer/password", map[string]string{
		"old_password": "WrongPass1!",
		"new_password": "NewSecret2@",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UCR-004", parseBody(t, w)["code"])

	// Field kosong
	w = doJSON(t, r, http.MethodPut, "/customer/password", map[string]string{
		"old_password": "",
		"new_password": "NewSecret2@",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UCR-003", parseBody(t, w)["code"])

	w = doJSON(t, r, http.MethodPut, "/customer/password", map[string]string{
		"old_password": "Secret1!",
		"new_password": "NewSecret2@",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CUSTOMER PASSWORD UPDATED SUCCESSFULLY", parseBody(t, w)["status"])
}
