package shelf

import (
	"time"

	"github.com/rs/zerolog"
)

var _ Handle = &World{}

// World is a Registry driven by a simulation clock.
type World struct {
	*Registry

	now      time.Duration
	tick     uint64
	updating bool
	logger   zerolog.Logger
}

// WorldOption configures a World at construction.
type WorldOption func(*World)

// WithLogger overrides the package Config logger for one world.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger = logger
		w.Registry.logger = logger
	}
}

// WithClock starts the simulation clock at now instead of zero.
func WithClock(now time.Duration) WorldOption {
	return func(w *World) {
		w.now = now
	}
}

func newWorld(opts ...WorldOption) *World {
	w := &World{
		Registry: newRegistry(Config.logger),
		logger:   Config.logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Now returns the simulation time at the start of the current (or next) tick.
func (w *World) Now() time.Duration {
	return w.now
}

// Tick returns the number of completed update passes.
func (w *World) Tick() uint64 {
	return w.tick
}

// Updating reports whether an update pass is in progress.
func (w *World) Updating() bool {
	return w.updating
}

// UpdateAll runs one tick: every column in registration order, every occupied
// slot in ascending entity order. A failing hook stops the pass; the clock only
// advances when the whole pass succeeds.
func (w *World) UpdateAll(dt time.Duration) error {
	if w.updating {
		return ReentrantUpdateError{Tick: w.tick}
	}
	w.updating = true
	defer func() { w.updating = false }()

	for i := 0; i < len(w.columns); i++ {
		if err := w.columns[i].update(w, dt); err != nil {
			w.logger.Error().
				Err(err).
				Uint64("tick", w.tick).
				Dur("now", w.now).
				Msg("update pass aborted")
			return err
		}
	}
	w.now += dt
	w.tick++
	return nil
}
