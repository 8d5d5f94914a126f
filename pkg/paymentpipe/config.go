package paymentpipe

import (
	"net/url"
	"time"
)

type Config struct {
	UseSSL     bool          `mapstructure:"use_ssl"`
	WebAddress string        `mapstructure:"web_address"`
	Port       int           `mapstructure:"port"`
	Context    string        `mapstructure:"context"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ServerURL builds the payment server base URL. A zero port means the scheme default.
func (c Config) ServerURL() (*url.URL, error) {
	opts := []ServerOption{WithSSL(c.UseSSL), WithContext(c.Context)}
	if c.Port > 0 {
		opts = append(opts, WithPort(c.Port))
	}

	builder, err := NewServerURLBuilder(c.WebAddress, opts...)
	if err != nil {
		return nil, err
	}

	return builder.URL()
}
