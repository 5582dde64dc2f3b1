package config

import (
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.Host == "" {
		c.Host = "http://localhost:9000"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":9000"
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = ":9001"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Config == "" {
		c.Database.Config = "todos.sqlite"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
}

// String returns the configuration in string format.
func (c *Config) String() string {
	redacted := *c
	if redacted.Database.EncryptionKey != "" {
		redacted.Database.EncryptionKey = "********"
	}
	out, _ := yaml.Marshal(redacted)
	return string(out)
}

type Config struct {
	Logging     Logging
	Host        string `envconfig:"HOST"`
	ListenAddr  string `envconfig:"LISTEN_ADDR"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
	Database    Database
	BcryptCost  int `envconfig:"BCRYPT_COST"`
}

// Logging provides the logging configuration.
type Logging struct {
	Debug bool `envconfig:"DEBUG"`
	Trace bool `envconfig:"TRACE"`
}

type Database struct {
	Driver string `envconfig:"DATABASE_DRIVER"`
	Config string `envconfig:"DATABASE_CONFIG"`
	// 32 bytes long, to-do descriptions are stored encrypted when set
	EncryptionKey string `envconfig:"DATABASE_ENCRYPTION_KEY"`
}
