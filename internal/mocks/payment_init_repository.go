package mocks

import (
	"context"

	"github.com/Behyna/e24-payment-pipe/internal/model"
	"github.com/stretchr/testify/mock"
)

type PaymentInitRepository struct {
	mock.Mock
}

func (m *PaymentInitRepository) Create(ctx context.Context, payment *model.PaymentInit) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentInitRepository) Update(ctx context.Context, payment *model.PaymentInit) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *PaymentInitRepository) GetByTrackID(ctx context.Context, trackID string) (*model.PaymentInit, error) {
	args := m.Called(ctx, trackID)
	return args.Get(0).(*model.PaymentInit), args.Error(1)
}
