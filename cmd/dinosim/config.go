package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// SimConfig is read from the environment; command-line flags override it.
type SimConfig struct {
	TickRate      int    `config:"DINOSIM_TICK_RATE"`
	Ticks         int    `config:"DINOSIM_TICKS"`
	Catalog       string `config:"DINOSIM_CATALOG"`
	LogLevel      string `config:"DINOSIM_LOG_LEVEL"`
	StatsdAddress string `config:"DINOSIM_STATSD_ADDRESS"`
	Realtime      bool   `config:"DINOSIM_REALTIME"`
}

func defaultConfig() SimConfig {
	return SimConfig{
		TickRate: 60,
		Ticks:    600,
		LogLevel: "info",
	}
}

// LoadConfig overlays matching environment variables on the defaults.
func LoadConfig() (SimConfig, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return SimConfig{}, eris.Wrap(err, "reading environment")
	}
	return cfg, nil
}

func (c SimConfig) Validate() error {
	if c.TickRate <= 0 {
		return eris.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Ticks < 0 {
		return eris.Errorf("tick count must not be negative, got %d", c.Ticks)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return nil
}
