package store

import "github.com/kelseyhightower/envconfig"

const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

type Config struct {
	Backend      string `envconfig:"VITALS_STORE_BACKEND" default:"file"`
	Path         string `envconfig:"VITALS_STORE_PATH" default:"pacientes.json"`
	DocumentKey  string `envconfig:"VITALS_STORE_DOCUMENT" default:"patients"`
	DatabaseName string `envconfig:"VITALS_DATABASE_NAME" default:"vitals"`
	Hosts        string `envconfig:"VITALS_STORE_ADDRESSES"  default:"localhost"`
	OptParams    string `envconfig:"VITALS_STORE_OPT_PARAMS"`
	Password     string `envconfig:"VITALS_STORE_PASSWORD"`
	Scheme       string `envconfig:"VITALS_STORE_SCHEME" default:"mongodb"`
	Ssl          bool   `envconfig:"VITALS_STORE_TLS"`
	User         string `envconfig:"VITALS_STORE_USERNAME"`
}

func (c *Config) GetConnectionString() (string, error) {
	var cs string
	if c.Scheme != "" {
		cs = c.Scheme + "://"
	} else {
		cs = "mongodb://"
	}

	if c.User != "" {
		cs += c.User
		if c.Password != "" {
			cs += ":"
			cs += c.Password
		}
		cs += "@"
	}

	if c.Hosts != "" {
		cs += c.Hosts
	} else {
		cs += "localhost"
	}
	cs += "/"

	if c.Ssl {
		cs += "?ssl=true"
	} else {
		cs += "?ssl=false"
	}

	if c.OptParams != "" {
		cs += "&"
		cs += c.OptParams
	}
	return cs, nil
}
