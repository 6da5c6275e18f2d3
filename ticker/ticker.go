// Package ticker drives a shelf.World at a fixed simulation rate.
//
// Real time is accumulated and spent in whole fixed steps, so the world always
// sees the same dt no matter how irregularly the host calls in.
package ticker

import (
	"context"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/TheBitDrifter/shelf"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const defaultMaxCatchUp = 5

// TickFunc runs around every fixed step.
type TickFunc func(w *shelf.World) error

type Loop struct {
	world       *shelf.World
	step        time.Duration
	accumulator time.Duration
	maxCatchUp  int
	realtime    bool
	beforeTick  []TickFunc
	afterTick   []TickFunc
	logger      zerolog.Logger
	stats       ddstatsd.ClientInterface
}

type Option func(*Loop)

// WithMaxCatchUp bounds how many steps one Step call may run. Time beyond that is dropped.
func WithMaxCatchUp(n int) Option {
	return func(l *Loop) {
		l.maxCatchUp = n
	}
}

// WithRealtime paces Run against the wall clock instead of running flat out.
func WithRealtime(realtime bool) Option {
	return func(l *Loop) {
		l.realtime = realtime
	}
}

func WithBeforeTick(fn TickFunc) Option {
	return func(l *Loop) {
		l.beforeTick = append(l.beforeTick, fn)
	}
}

func WithAfterTick(fn TickFunc) Option {
	return func(l *Loop) {
		l.afterTick = append(l.afterTick, fn)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

func WithStatsd(client ddstatsd.ClientInterface) Option {
	return func(l *Loop) {
		l.stats = client
	}
}

// New creates a loop running world at rate ticks per second.
func New(world *shelf.World, rate int, opts ...Option) (*Loop, error) {
	if world == nil {
		return nil, eris.New("world must not be nil")
	}
	if rate <= 0 {
		return nil, eris.Errorf("tick rate must be positive, got %d", rate)
	}
	l := &Loop{
		world:      world,
		step:       time.Second / time.Duration(rate),
		maxCatchUp: defaultMaxCatchUp,
		logger:     zerolog.Nop(),
		stats:      &ddstatsd.NoOpClient{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.maxCatchUp <= 0 {
		return nil, eris.Errorf("max catch-up must be positive, got %d", l.maxCatchUp)
	}
	return l, nil
}

// StepSize returns the fixed dt handed to every update pass.
func (l *Loop) StepSize() time.Duration {
	return l.step
}

// Pending returns the accumulated time not yet spent on a step.
func (l *Loop) Pending() time.Duration {
	return l.accumulator
}

// Step adds elapsed real time and runs as many fixed steps as it covers.
// It returns the number of steps run.
func (l *Loop) Step(elapsed time.Duration) (int, error) {
	l.accumulator += elapsed
	ran := 0
	for l.accumulator >= l.step {
		if ran == l.maxCatchUp {
			dropped := l.accumulator - l.accumulator%l.step
			l.logger.Warn().
				Uint64("tick", l.world.Tick()).
				Dur("dropped", dropped).
				Msg("tick overrun, dropping simulation time")
			l.accumulator %= l.step
			break
		}
		if err := l.tick(); err != nil {
			return ran, err
		}
		l.accumulator -= l.step
		ran++
	}
	return ran, nil
}

// Run executes ticks steps, or runs until ctx is done when ticks is not positive.
func (l *Loop) Run(ctx context.Context, ticks int) error {
	l.logger.Info().
		Dur("step", l.step).
		Int("ticks", ticks).
		Bool("realtime", l.realtime).
		Msg("simulation started")

	var err error
	if l.realtime {
		err = l.runRealtime(ctx, ticks)
	} else {
		err = l.runFlat(ctx, ticks)
	}

	l.logger.Info().
		Uint64("ticks", l.world.Tick()).
		Dur("now", l.world.Now()).
		Msg("simulation stopped")
	return err
}

func (l *Loop) runFlat(ctx context.Context, ticks int) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) runRealtime(ctx context.Context, ticks int) error {
	clock := time.NewTicker(l.step)
	defer clock.Stop()

	start := l.world.Tick()
	last := time.Now()
	for ticks <= 0 || l.world.Tick()-start < uint64(ticks) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-clock.C:
			elapsed := now.Sub(last)
			last = now
			if ticks > 0 {
				remaining := time.Duration(uint64(ticks)-(l.world.Tick()-start)) * l.step
				elapsed = min(elapsed, remaining-l.accumulator)
			}
			if _, err := l.Step(elapsed); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Loop) tick() error {
	start := time.Now()
	for _, fn := range l.beforeTick {
		if err := fn(l.world); err != nil {
			return eris.Wrapf(err, "before tick %d", l.world.Tick())
		}
	}
	if err := l.world.UpdateAll(l.step); err != nil {
		return eris.Wrapf(err, "tick %d", l.world.Tick())
	}
	for _, fn := range l.afterTick {
		if err := fn(l.world); err != nil {
			return eris.Wrapf(err, "after tick %d", l.world.Tick())
		}
	}
	l.emit(start)
	return nil
}

func (l *Loop) emit(start time.Time) {
	if err := l.stats.Timing(statTick, time.Since(start), nil, 1); err != nil {
		l.logger.Warn().Err(err).Msg("failed to emit tick stat")
	}
	if err := l.stats.Incr(statTicks, nil, 1); err != nil {
		l.logger.Warn().Err(err).Msg("failed to emit tick count")
	}
}
