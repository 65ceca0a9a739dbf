package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type ServerConfig struct {
	Port               int     `mapstructure:"port"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

func (config ServerConfig) Address() string {
	return fmt.Sprintf(":%d", config.Port)
}

func (config ServerConfig) validate() error {

	var invalidFields []string

	if config.Port <= 0 || config.Port > 65535 {
		invalidFields = append(invalidFields, "port")
	}

	if config.RateLimitPerSecond <= 0 {
		invalidFields = append(invalidFields, "rate_limit_per_second")
	}

	if config.RateLimitBurst <= 0 {
		invalidFields = append(invalidFields, "rate_limit_burst")
	}

	if len(invalidFields) > 0 {
		return fmt.Errorf("invalid variables: %s", strings.Join(invalidFields, ", "))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("server.rate_limit_per_second", "RATE_LIMIT_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("server.rate_limit_burst", "RATE_LIMIT_BURST"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
