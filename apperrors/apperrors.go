package apperrors

import (
	"errors"
	"net/http"
)

// AppError adalah error domain dengan kode stabil dan status HTTP tetap.
// Semua error lain yang sampai ke handler jatuh ke ErrUnexpected (GEN-001).
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func New(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// From mengembalikan AppError dari err, atau ErrUnexpected jika err bukan
// bagian dari taksonomi.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrUnexpected
}

var (
	ErrUnexpected = New("GEN-001", "An unexpected error occurred. Please contact System Administrator", http.StatusInternalServerError)

	// Signup
	ErrContactRegistered = New("SGR-001", "This contact number is already registered! Try other contact number.", http.StatusBadRequest)
	ErrInvalidEmail      = New("SGR-002", "Invalid email-id format!", http.StatusBadRequest)
	ErrInvalidContact    = New("SGR-003", "Invalid contact number!", http.StatusBadRequest)
	ErrWeakPassword      = New("SGR-004", "Weak password!", http.StatusBadRequest)
	ErrSignupFieldsEmpty = New("SGR-005", "Except last name all fields should be filled", http.StatusBadRequest)

	// Authentication (login)
	ErrContactNotRegistered = New("ATH-001", "This contact number has not been registered!", http.StatusUnauthorized)
	ErrInvalidCredentials   = New("ATH-002", "Invalid Credentials", http.StatusUnauthorized)
	ErrMalformedBasicToken  = New("ATH-003", "Incorrect format of decoded customer name and password", http.StatusUnauthorized)
	ErrBasicPrefixMissing   = New("ATH-004", "Prefix 'Basic ' missing on Authentication Token", http.StatusUnauthorized)

	// Authorization (bearer token)
	ErrNotLoggedIn         = New("ATHR-001", "Customer is not Logged in.", http.StatusForbidden)
	ErrLoggedOut           = New("ATHR-002", "Customer is logged out. Log in again to access this endpoint.", http.StatusForbidden)
	ErrSessionExpired      = New("ATHR-003", "Your session is expired. Log in again to access this endpoint.", http.StatusForbidden)
	ErrAddressNotOwned     = New("ATHR-004", "You are not authorized to view/update/delete any one else's address", http.StatusForbidden)
	ErrBearerPrefixMissing = New("ATHR-005", "Prefix 'Bearer ' missing on Access/Authorization token", http.StatusForbidden)

	// Customer update
	ErrWeakNewPassword      = New("UCR-001", "Weak password!", http.StatusBadRequest)
	ErrFirstNameEmpty       = New("UCR-002", "First name field should not be empty", http.StatusBadRequest)
	ErrPasswordFieldsEmpty  = New("UCR-003", "No field should be empty", http.StatusBadRequest)
	ErrIncorrectOldPassword = New("UCR-004", "Incorrect old password!", http.StatusBadRequest)

	// Address
	ErrAddressFieldsEmpty = New("SAR-001", "No field can be empty", http.StatusBadRequest)
	ErrInvalidPincode     = New("SAR-002", "Invalid pincode", http.StatusBadRequest)
	ErrStateNotFound      = New("ANF-002", "No state by this id", http.StatusNotFound)
	ErrAddressNotFound    = New("ANF-003", "No address by this id", http.StatusNotFound)
	ErrAddressIDEmpty     = New("ANF-005", "Address id can not be empty", http.StatusNotFound)

	// Category
	ErrCategoryIDEmpty  = New("CNF-001", "Category id field should not be empty", http.StatusNotFound)
	ErrCategoryNotFound = New("CNF-002", "No category by this id", http.StatusNotFound)

	// Coupon
	ErrCouponNotFound  = New("CPF-001", "No coupon by this name", http.StatusNotFound)
	ErrCouponNameEmpty = New("CPF-002", "Coupon name field should not be empty", http.StatusNotFound)
	ErrCouponIDInvalid = New("CPF-002", "No coupon by this id", http.StatusNotFound)

	// Restaurant
	ErrRestaurantNotFound  = New("RNF-001", "No restaurant by this id", http.StatusNotFound)
	ErrRestaurantIDEmpty   = New("RNF-002", "Restaurant id field should not be empty", http.StatusNotFound)
	ErrRestaurantNameEmpty = New("RNF-003", "Restaurant name field should not be empty", http.StatusNotFound)
	ErrInvalidRating       = New("IRE-001", "Restaurant should be in the range of 1 to 5", http.StatusBadRequest)

	// Payment & item
	ErrPaymentNotFound = New("PNF-002", "No payment method found by this id", http.StatusNotFound)
	ErrItemNotFound    = New("INF-001", "No item by this id exist", http.StatusNotFound)
)
