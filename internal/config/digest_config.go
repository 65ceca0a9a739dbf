package config

import (
	"fmt"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type DigestConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

func (config DigestConfig) validate() error {
	if !config.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", config.Schedule, err)
	}
	return nil
}

func (config DigestConfig) bindEnvironmentVariables(v *viper.Viper) error {
	if err := v.BindEnv("digest.enabled", "DIGEST_ENABLED"); err != nil {
		return err
	}
	return v.BindEnv("digest.schedule", "DIGEST_SCHEDULE")
}
