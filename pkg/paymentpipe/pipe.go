package paymentpipe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Behyna/e24-payment-pipe/pkg/httpclient"
)

const (
	PaymentInitServlet = "PaymentInitHTTPServlet"
	DefaultTimeout     = 5 * time.Second

	servletPath = "servlet/"
	contentType = "application/x-www-form-urlencoded"
)

type PaymentPipe interface {
	Initialize(ctx context.Context, msg *PaymentInitMessage, timeout time.Duration) (PaymentDetails, error)
	BuildURL(servletName string) (*url.URL, error)
}

type paymentPipe struct {
	serverURL *url.URL
	client    httpclient.HTTPClient
}

func NewPaymentPipe(serverURL *url.URL, client httpclient.HTTPClient) (PaymentPipe, error) {
	if serverURL == nil {
		return nil, invalidArgument("payment server url is required")
	}

	if client == nil {
		return nil, invalidArgument("http client is required")
	}

	return &paymentPipe{serverURL: cloneURL(serverURL), client: client}, nil
}

func (p *paymentPipe) BuildURL(servletName string) (*url.URL, error) {
	raw := p.serverURL.String() + servletPath + servletName

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}

	return u, nil
}

// Initialize sends msg to the payment init servlet and interprets the answer.
// A non-positive timeout falls back to DefaultTimeout.
func (p *paymentPipe) Initialize(ctx context.Context, msg *PaymentInitMessage, timeout time.Duration) (PaymentDetails, error) {
	if msg == nil {
		return PaymentDetails{}, invalidArgument("payment init message is required")
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	u, err := p.BuildURL(PaymentInitServlet)
	if err != nil {
		return PaymentDetails{}, err
	}

	target := u.String()
	params := msg.Encode()

	response, err := p.send(ctx, target, params, timeout)
	if err != nil {
		return PaymentDetails{}, err
	}

	return ParseResponse(response, target, params)
}

func (p *paymentPipe) send(ctx context.Context, target, data string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	headers := map[string]string{
		"Content-Type": contentType,
	}

	// data is pure ASCII: every non-unreserved byte is percent-encoded.
	resp, err := p.client.Post(ctx, target, strings.NewReader(data), headers)
	if err != nil {
		return "", &TransportError{AttemptedURL: target, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &TransportError{
			AttemptedURL: target,
			StatusCode:   resp.StatusCode,
			Err:          fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{AttemptedURL: target, Err: err}
	}

	return string(body), nil
}
