package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{Service: service}
}

// Signup -> daftar customer baru
func (cc *CustomerController) Signup(c *gin.Context) {
	type request struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Email         string `json:"email_address"`
		ContactNumber string `json:"contact_number"`
		Password      string `json:"password"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrSignupFieldsEmpty)
		return
	}

	// Selain last name semua field wajib diisi
	if req.FirstName == "" || req.Email == "" || req.ContactNumber == "" || req.Password == "" {
		utils.RespondError(c, apperrors.ErrSignupFieldsEmpty)
		return
	}

	customer := &models.Customer{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	}

	saved, err := cc.Service.Signup(customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", saved.UUID)

	c.JSON(http.StatusCreated, gin.H{
		"id":     saved.UUID,
		"status": "CUSTOMER CREATED SUCCESSFULLY",
	})
}

// Login -> autentikasi lewat header Basic, token dikembalikan di header
// access-token.
func (cc *CustomerController) Login(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Basic ") {
		utils.RespondError(c, apperrors.ErrBasicPrefixMissing)
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
	if err != nil {
		utils.RespondError(c, apperrors.ErrMalformedBasicToken)
		return
	}

	contactNumber, password, err := services.BasicCredentials(string(decoded))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	auth, err := cc.Service.Authenticate(contactNumber, password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer logged in: %s", auth.Customer.UUID)

	c.Header("access-token", auth.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"id":             auth.Customer.UUID,
		"first_name":     auth.Customer.FirstName,
		"last_name":      auth.Customer.LastName,
		"email_address":  auth.Customer.Email,
		"contact_number": auth.Customer.ContactNumber,
		"message":        "LOGGED IN SUCCESSFULLY",
	})
}

// Logout -> menonaktifkan sesi yang sedang dipakai
func (cc *CustomerController) Logout(c *gin.Context) {
	accessToken := c.GetString(middlewares.ContextAccessToken)

	auth, err := cc.Service.Logout(accessToken)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      auth.Customer.UUID,
		"message": "LOGGED OUT SUCCESSFULLY",
	})
}

// Update -> ubah nama customer
func (cc *CustomerController) Update(c *gin.Context) {
	type request struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrFirstNameEmpty)
		return
	}
	if req.FirstName == "" {
		utils.RespondError(c, apperrors.ErrFirstNameEmpty)
		return
	}

	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName

	updated, err := cc.Service.UpdateCustomer(customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         updated.UUID,
		"first_name": updated.FirstName,
		"last_name":  updated.LastName,
		"status":     "CUSTOMER DETAILS UPDATED SUCCESSFULLY",
	})
}

// UpdatePassword -> ganti password setelah password lama diverifikasi
func (cc *CustomerController) UpdatePassword(c *gin.Context) {
	type request struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, apperrors.ErrPasswordFieldsEmpty)
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		utils.RespondError(c, apperrors.ErrPasswordFieldsEmpty)
		return
	}

	customer, ok := middlewares.CustomerFromContext(c)
	if !ok {
		utils.RespondError(c, apperrors.ErrNotLoggedIn)
		return
	}

	updated, err := cc.Service.UpdatePassword(req.OldPassword, req.NewPassword, customer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     updated.UUID,
		"status": "CUSTOMER PASSWORD UPDATED SUCCESSFULLY",
	})
}
