package mocks

import (
	"context"
	"net/url"
	"time"

	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/stretchr/testify/mock"
)

type PaymentPipe struct {
	mock.Mock
}

func (p *PaymentPipe) Initialize(ctx context.Context, msg *paymentpipe.PaymentInitMessage, timeout time.Duration) (paymentpipe.PaymentDetails, error) {
	args := p.Called(ctx, msg, timeout)
	return args.Get(0).(paymentpipe.PaymentDetails), args.Error(1)
}

func (p *PaymentPipe) BuildURL(servletName string) (*url.URL, error) {
	args := p.Called(servletName)
	return args.Get(0).(*url.URL), args.Error(1)
}
