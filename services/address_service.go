package services

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
	"gorm.io/gorm"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

type AddressService struct {
	db        *gorm.DB
	addresses *repositories.AddressRepository
	states    *repositories.StateRepository
	orders    *repositories.OrderRepository
}

func NewAddressService(db *gorm.DB, addresses *repositories.AddressRepository, states *repositories.StateRepository, orders *repositories.OrderRepository) *AddressService {
	return &AddressService{db: db, addresses: addresses, states: states, orders: orders}
}

// Save memvalidasi lalu menyimpan alamat baru untuk customer (active=1).
func (s *AddressService) Save(address *models.Address, stateUUID string, customer *models.Customer) (*models.Address, error) {
	if address.FlatBuildNo == "" || address.Locality == "" || address.City == "" || address.Pincode == "" {
		return nil, apperrors.ErrAddressFieldsEmpty
	}
	if !pincodePattern.MatchString(address.Pincode) {
		return nil, apperrors.ErrInvalidPincode
	}

	state, err := s.states.ByUUID(stateUUID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, apperrors.ErrStateNotFound
	}

	address.UUID = uuid.NewString()
	address.Active = 1
	address.CustomerID = customer.ID
	address.StateID = state.ID
	address.State = *state

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.addresses.WithTx(tx).Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// ActiveForCustomer mengembalikan alamat aktif milik customer, id menurun.
func (s *AddressService) ActiveForCustomer(customer *models.Customer) ([]models.Address, error) {
	return s.addresses.ActiveByCustomer(customer.ID)
}

// ByUUID memuat alamat dan memastikan pemiliknya adalah customer peminta.
func (s *AddressService) ByUUID(addressUUID string, customer *models.Customer) (*models.Address, error) {
	if addressUUID == "" {
		return nil, apperrors.ErrAddressIDEmpty
	}
	address, err := s.addresses.ByUUID(addressUUID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apperrors.ErrAddressNotFound
	}
	if address.CustomerID != customer.ID {
		return nil, apperrors.ErrAddressNotOwned
	}
	return address, nil
}

// Delete menghapus alamat permanen jika tidak ada order yang menunjuknya;
// kalau ada, alamat hanya dinonaktifkan supaya riwayat order tetap utuh.
func (s *AddressService) Delete(address *models.Address) error {
	count, err := s.orders.CountByAddress(address.ID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.addresses.WithTx(tx)
		if count == 0 {
			return repo.Delete(address)
		}
		return repo.Deactivate(address)
	})
}

func (s *AddressService) States() ([]models.State, error) {
	return s.states.All()
}
