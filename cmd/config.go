package cmd

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// Config holds the defaults of the CLI read from the environment.
//
// They only seed flag defaults: a flag set on the command line always wins.
type Config struct {
	Currency      string  `env:"PROP_CURRENCY" envDefault:"GBP"`
	ManagementFee float64 `env:"PROP_MANAGEMENT_FEE" envDefault:"10"`
	Maintenance   float64 `env:"PROP_MAINTENANCE" envDefault:"1"`
	Insurance     float64 `env:"PROP_INSURANCE" envDefault:"30"` // monthly
	VoidMonths    int     `env:"PROP_VOID_MONTHS" envDefault:"4"`
	Format        string  `env:"PROP_FORMAT" envDefault:"term"`
}

// ParseConfig loads the configuration from environ. A nil environ reads the
// process environment.
func ParseConfig(environ map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// loadConfig reads the process environment, falling back to the built-in
// defaults when it cannot be parsed.
func loadConfig() Config {
	c, err := ParseConfig(nil)
	if err == nil {
		return c
	}
	log.Printf("warning, ignoring environment: %v", err)
	c, err = ParseConfig(map[string]string{})
	if err != nil {
		// defaults are literals above.
		panic(err)
	}
	return c
}
