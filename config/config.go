package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort             uint16 `envconfig:"VITALS_HTTP_SERVER_PORT" default:"8080" required:"true"`
	ProfessionalPassword string `envconfig:"VITALS_PROFESSIONAL_PASSWORD" default:"apeiron"`
	Locale               string `envconfig:"VITALS_LOCALE" default:"en"`
	LogLevel             string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() *Config {
	return &Config{}
}

// NewConfig returns the configuration loaded from the environment.
func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
