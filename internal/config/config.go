package config

import (
	"fmt"

	"github.com/Behyna/e24-payment-pipe/pkg/mysql"
	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Database mysql.Config       `mapstructure:"database"`
	Gateway  paymentpipe.Config `mapstructure:"gateway"`
	Merchant Merchant           `mapstructure:"merchant"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Merchant holds the terminal credentials and defaults sent with every payment init.
type Merchant struct {
	ID          string `mapstructure:"id"`
	Password    string `mapstructure:"password"`
	ResponseURL string `mapstructure:"response_url"`
	ErrorURL    string `mapstructure:"error_url"`
	Language    string `mapstructure:"language"`
	Currency    int    `mapstructure:"currency"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
