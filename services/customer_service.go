package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"github.com/yeremiapane/food-ordering-app/utils"
	"gorm.io/gorm"
)

const accessTokenTTL = 8 * time.Hour

const minPasswordLength = 8

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9]+@[a-zA-Z0-9]+\.[a-zA-Z0-9]+$`)
	contactPattern    = regexp.MustCompile(`^[0-9]{10}$`)
	passwordUpperCase = regexp.MustCompile(`[A-Z]`)
	passwordDigit     = regexp.MustCompile(`[0-9]`)
	passwordSpecial   = regexp.MustCompile(`[#@$%&*!^]`)
)

type CustomerService struct {
	db        *gorm.DB
	customers *repositories.CustomerRepository
}

func NewCustomerService(db *gorm.DB, customers *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{db: db, customers: customers}
}

// Signup memvalidasi data customer baru lalu menyimpannya dengan password
// yang sudah di-hash memakai salt acak. Plaintext tidak pernah disimpan.
func (s *CustomerService) Signup(customer *models.Customer) (*models.Customer, error) {
	if !emailPattern.MatchString(customer.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !contactPattern.MatchString(customer.ContactNumber) {
		return nil, apperrors.ErrInvalidContact
	}
	if !isStrongPassword(customer.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.customers.WithTx(tx)

		existing, err := repo.ByContactNumber(customer.ContactNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrContactRegistered
		}

		salt, err := utils.GenerateSalt()
		if err != nil {
			return err
		}
		customer.UUID = uuid.NewString()
		customer.Salt = salt
		customer.Password = utils.HashPassword(customer.Password, salt)

		return repo.Create(customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Authenticate memeriksa kredensial login dan menerbitkan satu baris
// CustomerAuth baru dengan token yang berlaku 8 jam.
func (s *CustomerService) Authenticate(contactNumber, password string) (*models.CustomerAuth, error) {
	customer, err := s.customers.ByContactNumber(contactNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.ErrContactNotRegistered
	}

	if !utils.CheckPassword(password, customer.Salt, customer.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	loginAt := time.Now()
	expiresAt := loginAt.Add(accessTokenTTL)

	accessToken, err := utils.GenerateAccessToken(customer.UUID, loginAt, expiresAt)
	if err != nil {
		return nil, err
	}

	auth := &models.CustomerAuth{
		UUID:        uuid.NewString(),
		CustomerID:  customer.ID,
		Customer:    *customer,
		AccessToken: accessToken,
		LoginAt:     loginAt,
		ExpiresAt:   expiresAt,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).CreateAuth(auth)
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// AuthByAccessToken memvalidasi bearer token terhadap baris customer_auth:
// tidak ada -> ATHR-001, kadaluarsa -> ATHR-003, sudah logout -> ATHR-002.
// Perbandingan waktu dihitung ulang di setiap request, tanpa cache.
func (s *CustomerService) AuthByAccessToken(accessToken string) (*models.CustomerAuth, error) {
	auth, err := s.customers.AuthByAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, apperrors.ErrNotLoggedIn
	}
	if !time.Now().Before(auth.ExpiresAt) {
		return nil, apperrors.ErrSessionExpired
	}
	if auth.LogoutAt != nil {
		return nil, apperrors.ErrLoggedOut
	}
	return auth, nil
}

// CustomerByAccessToken mengembalikan customer pemilik token yang masih valid.
func (s *CustomerService) CustomerByAccessToken(accessToken string) (*models.Customer, error) {
	auth, err := s.AuthByAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	return &auth.Customer, nil
}

// Logout menandai sesi dengan logout_at; token yang sama tidak bisa dipakai
// lagi meskipun belum kadaluarsa.
func (s *CustomerService) Logout(accessToken string) (*models.CustomerAuth, error) {
	auth, err := s.AuthByAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	auth.LogoutAt = &now

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).UpdateAuth(auth)
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

func (s *CustomerService) UpdateCustomer(customer *models.Customer) (*models.Customer, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Update(customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdatePassword memverifikasi password lama lewat perbandingan hash yang
// sama dengan login, lalu menyimpan password baru dengan salt baru.
func (s *CustomerService) UpdatePassword(oldPassword, newPassword string, customer *models.Customer) (*models.Customer, error) {
	if !isStrongPassword(newPassword) {
		return nil, apperrors.ErrWeakNewPassword
	}
	if !utils.CheckPassword(oldPassword, customer.Salt, customer.Password) {
		return nil, apperrors.ErrIncorrectOldPassword
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return nil, err
	}
	customer.Salt = salt
	customer.Password = utils.HashPassword(newPassword, salt)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Update(customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Password kuat: panjang > 7, minimal satu huruf besar, satu angka dan satu
// karakter spesial (#@$%&*!^).
func isStrongPassword(password string) bool {
	return len(password) >= minPasswordLength &&
		passwordUpperCase.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSpecial.MatchString(password)
}

// BasicCredentials memecah hasil decode header Basic menjadi contact:password.
func BasicCredentials(decoded string) (string, string, error) {
	parts := strings.SplitN(decoded, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperrors.ErrMalformedBasicToken
	}
	return parts[0], parts[1], nil
}
