package ticker

import (
	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
)

const (
	statTick  = "tick"
	statTicks = "ticks"
)

// NewStatsdClient dials a statsd agent. An empty address yields a no-op client so
// callers never need to branch on whether metrics are enabled.
func NewStatsdClient(address string, tags []string) (ddstatsd.ClientInterface, error) {
	if address == "" {
		return &ddstatsd.NoOpClient{}, nil
	}
	opts := []ddstatsd.Option{
		ddstatsd.WithNamespace("shelf"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}
	client, err := ddstatsd.New(address, opts...)
	if err != nil {
		return nil, eris.Wrapf(err, "connecting to statsd at %s", address)
	}
	return client, nil
}
