// Command dinosim runs a headless dino-runner scene on the shelf ECS and logs
// what a renderer would draw once per simulated second.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/TheBitDrifter/shelf"
	"github.com/TheBitDrifter/shelf/anim"
	"github.com/TheBitDrifter/shelf/ticker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//go:embed assets/catalog.json
var defaultCatalog []byte

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg SimConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dinosim",
		Short:        "Run the dino scene headless",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, cfg, cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	flags.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "ticks to run, 0 runs until interrupted")
	flags.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "asset catalog JSON (default: built-in)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	flags.StringVar(&cfg.StatsdAddress, "statsd", cfg.StatsdAddress, "statsd agent address, empty disables metrics")
	flags.BoolVar(&cfg.Realtime, "realtime", cfg.Realtime, "pace ticks against the wall clock")
	return cmd
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "log level %q", level)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func loadCatalog(path string) (*anim.Catalog, error) {
	if path == "" {
		return anim.LoadCatalog(bytes.NewReader(defaultCatalog))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "opening catalog %s", path)
	}
	defer f.Close()
	return anim.LoadCatalog(f)
}

func run(ctx context.Context, cfg SimConfig, out io.Writer) error {
	logger, err := newLogger(out, cfg.LogLevel)
	if err != nil {
		return err
	}
	shelf.Config.SetLogger(logger)

	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	stats, err := ticker.NewStatsdClient(cfg.StatsdAddress, []string{"service:dinosim"})
	if err != nil {
		return err
	}
	defer stats.Close()

	world := shelf.Factory.NewWorld()
	scene, err := buildScene(world, catalog)
	if err != nil {
		return eris.Wrap(err, "building scene")
	}
	logger.Debug().
		Strs("components", world.ComponentTypes()).
		Int("entities", world.EntityCount()).
		Msg("scene ready")

	script := defaultScript(scene.Dino)
	draw := renderer{catalog: catalog, logger: logger, every: uint64(cfg.TickRate)}

	loop, err := ticker.New(world, cfg.TickRate,
		ticker.WithLogger(logger),
		ticker.WithStatsd(stats),
		ticker.WithRealtime(cfg.Realtime),
		ticker.WithBeforeTick(script.Apply),
		ticker.WithAfterTick(draw.Draw),
	)
	if err != nil {
		return err
	}
	if err := loop.Run(ctx, cfg.Ticks); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
