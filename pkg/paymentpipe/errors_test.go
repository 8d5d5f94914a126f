package paymentpipe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/stretchr/testify/assert"
)

func TestBadResponseError(t *testing.T) {
	err := &paymentpipe.BadResponseError{Response: "!ERROR!boom", AttemptedURL: "http://x/", AttemptedParams: "a=b"}

	assert.ErrorIs(t, err, paymentpipe.ErrBadResponse)
	assert.NotErrorIs(t, err, paymentpipe.ErrTransport)
	assert.Equal(t, "bad response from http://x/: !ERROR!boom", err.Error())

	empty := &paymentpipe.BadResponseError{AttemptedURL: "http://x/"}
	assert.Equal(t, "bad response from http://x/: empty body", empty.Error())
}

func TestTransportError(t *testing.T) {
	err := &paymentpipe.TransportError{AttemptedURL: "http://x/", Err: context.DeadlineExceeded}

	assert.ErrorIs(t, err, paymentpipe.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, paymentpipe.ErrBadResponse)
	assert.Equal(t, "transport error calling http://x/: context deadline exceeded", err.Error())

	status := &paymentpipe.TransportError{AttemptedURL: "http://x/", StatusCode: 503, Err: errors.New("unexpected status")}
	assert.Equal(t, "transport error calling http://x/: status 503", status.Error())
}
