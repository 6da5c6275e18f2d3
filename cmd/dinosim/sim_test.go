package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TheBitDrifter/shelf"
	"github.com/TheBitDrifter/shelf/anim"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptStateAt(t *testing.T) {
	script := defaultScript(0)

	tests := []struct {
		now  time.Duration
		want DinoState
	}{
		{0, Running},
		{1999 * time.Millisecond, Running},
		{2 * time.Second, Jumping},
		{2400 * time.Millisecond, Jumping},
		{2500 * time.Millisecond, Running},
		{4500 * time.Millisecond, Ducking},
		{5 * time.Second, Running},
		{8 * time.Second, Jumping},
	}

	for _, tt := range tests {
		t.Run(tt.now.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, script.StateAt(tt.now))
		})
	}
}

func TestSceneSwitchesDinoClip(t *testing.T) {
	catalog, err := loadCatalog("")
	require.NoError(t, err)

	world := shelf.Factory.NewWorld()
	scene, err := buildScene(world, catalog)
	require.NoError(t, err)
	script := defaultScript(scene.Dino)

	step := time.Second / 60
	for world.Now() < 2100*time.Millisecond {
		require.NoError(t, script.Apply(world))
		require.NoError(t, world.UpdateAll(step))
	}

	m, ok := shelf.GetComponent[anim.AnimStateMachine[DinoState]](world, scene.Dino)
	require.True(t, ok)
	assert.Equal(t, Jumping, m.CurrentState())

	a, ok := shelf.GetComponent[anim.Animation](world, scene.Dino)
	require.True(t, ok)
	name, err := catalog.Name(a.Clip())
	require.NoError(t, err)
	assert.Equal(t, "dino_jump", name)

	assert.Len(t, shelf.Entities[anim.Animation](world), 4)
	for _, cloud := range scene.Clouds {
		pos, ok := shelf.GetComponent[Position](world, cloud)
		require.True(t, ok)
		assert.GreaterOrEqual(t, pos.X, -screenWidth/2)
	}
}

func TestRendererLogsEveryAnimatedEntity(t *testing.T) {
	catalog, err := loadCatalog("")
	require.NoError(t, err)
	world := shelf.Factory.NewWorld()
	_, err = buildScene(world, catalog)
	require.NoError(t, err)

	var out bytes.Buffer
	draw := renderer{catalog: catalog, logger: zerolog.New(&out), every: 1}
	require.NoError(t, draw.Draw(world))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"clip":"dino_run"`)
	assert.Contains(t, lines[0], `"image":"dino/run_0.png"`)
}

func TestRunHeadless(t *testing.T) {
	cfg := defaultConfig()
	cfg.Ticks = 120
	cfg.LogLevel = "info"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out))
	assert.Contains(t, out.String(), "simulation stopped")
	assert.Contains(t, out.String(), "dino_run")
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clips": [{"name": "x", "fps": 1, "frames": ["x.png"]}]}`), 0o600))

	c, err := loadCatalog(path)
	require.NoError(t, err)
	_, err = c.ClipID("x")
	assert.NoError(t, err)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimConfig)
		wantErr bool
	}{
		{"defaults", func(*SimConfig) {}, false},
		{"zero rate", func(c *SimConfig) { c.TickRate = 0 }, true},
		{"negative ticks", func(c *SimConfig) { c.Ticks = -1 }, true},
		{"bad level", func(c *SimConfig) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DINOSIM_TICK_RATE", "30")
	t.Setenv("DINOSIM_REALTIME", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.True(t, cfg.Realtime)
	assert.Equal(t, 600, cfg.Ticks)
}
