package password

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"github.com/dmitrymomot/passkit/pkg/charset"
)

var (
	cfg     Config
	cfgErr  error
	cfgOnce sync.Once
)

// Config carries the process-wide derivation defaults. Overriding iterations
// or charsets makes generated passwords incompatible with stock settings, so
// these knobs exist for deployments that accept that trade-off.
type Config struct {
	Iterations uint32 `env:"PASSKIT_ITERATIONS" envDefault:"100000"`
	Length     uint8  `env:"PASSKIT_PASSWORD_LENGTH" envDefault:"16"`
	Charsets   uint8  `env:"PASSKIT_CHARSETS" envDefault:"15"` // bitmask: 1=lower, 2=upper, 4=number, 8=symbol
}

// LoadConfig reads the derivation defaults from the environment once per
// process and caches the result.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		if err := env.Parse(&cfg); err != nil {
			cfgErr = fmt.Errorf("parse password config: %w", err)
			return
		}
		if _, err := charset.FromByte(cfg.Charsets); err != nil {
			cfgErr = err
			return
		}
		if cfg.Length < MinLength {
			cfgErr = fmt.Errorf("%w: minimum %d, configured %d", ErrPasswordTooShort, MinLength, cfg.Length)
		}
	})
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	return cfg, nil
}

// SettingsFromConfig builds derivation settings from the environment-driven
// defaults.
func SettingsFromConfig() (Settings, error) {
	c, err := LoadConfig()
	if err != nil {
		return Settings{}, err
	}
	set, err := charset.FromByte(c.Charsets)
	if err != nil {
		return Settings{}, err
	}
	iterations := c.Iterations
	if iterations == DefaultIterations {
		iterations = 0
	}
	return Settings{
		Iterations: iterations,
		Length:     c.Length,
		Charsets:   set,
	}, nil
}
