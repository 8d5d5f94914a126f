package paymentpipe

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ServerURLBuilder identifies the server that processes the payment requests.
//
//	builder, err := paymentpipe.NewServerURLBuilder("bankserver.example.com",
//		paymentpipe.WithContext("/context"), paymentpipe.WithSSL(true), paymentpipe.WithPort(443))
//	baseURL, err := builder.URL()
type ServerURLBuilder struct {
	ssl        bool
	webAddress string
	port       *int
	context    string
}

type ServerOption func(*ServerURLBuilder)

func WithSSL(ssl bool) ServerOption {
	return func(b *ServerURLBuilder) {
		b.ssl = ssl
	}
}

// WithPort sets an explicit port. Values <= 0 are kept but ignored when the URL is built.
func WithPort(port int) ServerOption {
	return func(b *ServerURLBuilder) {
		b.port = &port
	}
}

// WithContext sets the path context given by the payment provider, e.g. "/cg301".
func WithContext(context string) ServerOption {
	return func(b *ServerURLBuilder) {
		b.context = context
	}
}

func NewServerURLBuilder(webAddress string, opts ...ServerOption) (*ServerURLBuilder, error) {
	if strings.TrimSpace(webAddress) == "" {
		return nil, fmt.Errorf("%w: web address is required", ErrInvalidConfig)
	}

	b := &ServerURLBuilder{webAddress: webAddress}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

func (b *ServerURLBuilder) SSL() bool {
	return b.ssl
}

func (b *ServerURLBuilder) WebAddress() string {
	return b.webAddress
}

func (b *ServerURLBuilder) Port() (int, bool) {
	if b.port == nil {
		return 0, false
	}

	return *b.port, true
}

func (b *ServerURLBuilder) Context() string {
	return b.context
}

// URL assembles the base URL of the payment server. The result always ends with a single slash.
func (b *ServerURLBuilder) URL() (*url.URL, error) {
	var sb strings.Builder

	if b.ssl {
		sb.WriteString("https://")
	} else {
		sb.WriteString("http://")
	}

	sb.WriteString(b.webAddress)

	if b.port != nil && *b.port > 0 {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(*b.port))
	}

	if strings.TrimSpace(b.context) != "" {
		if !strings.HasPrefix(b.context, "/") {
			sb.WriteString("/")
		}
		sb.WriteString(b.context)
		if !strings.HasSuffix(b.context, "/") {
			sb.WriteString("/")
		}
	} else {
		sb.WriteString("/")
	}

	raw := sb.String()
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrInvalidURL, raw)
	}

	return u, nil
}

// String renders the URL without the scheme's default port.
func (b *ServerURLBuilder) String() string {
	u, err := b.URL()
	if err != nil {
		return ""
	}

	if defaultPort(u.Scheme) == u.Port() {
		u.Host = hostWithoutPort(u)
	}

	return u.String()
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostWithoutPort(u *url.URL) string {
	host := u.Hostname()
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}

	return host
}
