// Package raw reads the bootstrap environment, the part needed before the logger exists
// it must not import the logger
package raw

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Log is the LOG_* block
type Log struct {
	Level       string `env:"LEVEL"        envDefault:"debug"`
	Format      string `env:"FORMAT"       envDefault:"console"`
	Service     string `env:"SERVICE"`
	Component   string `env:"COMPONENT"`
	Caller      bool   `env:"CALLER"`
	SampleEvery int    `env:"SAMPLE_EVERY"`
}

// Bootstrap is everything read ahead of config.Conf
type Bootstrap struct {
	AppName string `env:"APP_NAME" envDefault:"addressbook-api"`
	Log     Log    `envPrefix:"LOG_"`
}

// Load parses the process environment
func Load() (Bootstrap, error) {
	var b Bootstrap
	if err := env.Parse(&b); err != nil {
		return Defaults(), fmt.Errorf("bootstrap env: %w", err)
	}
	return b, nil
}

// Defaults is Bootstrap with every key unset
func Defaults() Bootstrap {
	var b Bootstrap
	_ = env.ParseWithOptions(&b, env.Options{Environment: map[string]string{}})
	return b
}
