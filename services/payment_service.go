package services

import (
	"github.com/yeremiapane/food-ordering-app/apperrors"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repositories"
)

type PaymentService struct {
	payments *repositories.PaymentRepository
}

func NewPaymentService(payments *repositories.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

func (s *PaymentService) All() ([]models.Payment, error) {
	return s.payments.All()
}

func (s *PaymentService) ByUUID(paymentUUID string) (*models.Payment, error) {
	payment, err := s.payments.ByUUID(paymentUUID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}
