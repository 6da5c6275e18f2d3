package shelf

import "github.com/rs/zerolog"

// Config holds global configuration for new registries and worlds
var Config config = config{logger: zerolog.Nop()}

type config struct {
	logger zerolog.Logger
}

// SetLogger sets the logger captured by registries and worlds created afterwards
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// Logger returns the currently configured logger
func (c *config) Logger() zerolog.Logger {
	return c.logger
}
