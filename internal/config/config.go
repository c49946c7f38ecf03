// Package config parses tokstat options from the command line and environment.
package config

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/pavanmanishd/slotarena/internal/logging"
)

// ErrHelp is returned by Load when help was requested. The usage text has
// already been printed.
var ErrHelp = errors.New("help requested")

// Config holds all configuration parameters
type Config struct {
	Arena   ArenaConfig    `group:"arena" namespace:"arena" env-namespace:"TOKSTAT_ARENA"`
	Workers int            `short:"w" long:"workers" env:"TOKSTAT_WORKERS" description:"Number of files tokenized in parallel" default:"4"`
	Top     int            `short:"n" long:"top" env:"TOKSTAT_TOP" description:"Number of most frequent tokens to report" default:"10"`
	Logging logging.Config `group:"logging" namespace:"log" env-namespace:"TOKSTAT_LOG"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Files to tokenize (stdin when empty)"`
	} `positional-args:"yes"`
}

type ArenaConfig struct {
	Capacity int `long:"capacity" env:"CAPACITY" description:"Pooled tokens per worker and file" default:"65536"`
}

// Load parses args (without the program name) and environment variables.
func Load(args []string) (*Config, error) {
	config := &Config{}
	parser := flags.NewParser(config, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Arena.Capacity <= 0 {
		return fmt.Errorf("arena capacity must be positive: %d", c.Arena.Capacity)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive: %d", c.Workers)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative: %d", c.Top)
	}
	return c.Logging.Validate()
}
