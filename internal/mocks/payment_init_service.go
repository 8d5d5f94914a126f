package mocks

import (
	"context"

	"github.com/Behyna/e24-payment-pipe/internal/service"
	"github.com/stretchr/testify/mock"
)

type PaymentInitService struct {
	mock.Mock
}

func (s *PaymentInitService) Initialize(ctx context.Context, cmd service.InitializePaymentCommand) (service.InitializePaymentResponse, error) {
	args := s.Called(ctx, cmd)
	return args.Get(0).(service.InitializePaymentResponse), args.Error(1)
}

func (s *PaymentInitService) GetPayment(ctx context.Context, query service.GetPaymentQuery) (service.Payment, error) {
	args := s.Called(ctx, query)
	return args.Get(0).(service.Payment), args.Error(1)
}
