package main

import (
	"time"

	"github.com/TheBitDrifter/shelf"
	"github.com/TheBitDrifter/shelf/anim"
	"github.com/rs/zerolog"
)

// DinoState drives the dino's animation state machine.
type DinoState int

const (
	Running DinoState = iota
	Jumping
	Ducking
)

func (s DinoState) String() string {
	switch s {
	case Running:
		return "Running"
	case Jumping:
		return "Jumping"
	case Ducking:
		return "Ducking"
	}
	return "Unknown"
}

const dinoTag anim.AssetTag = "dino"

type Position struct {
	X, Y float64
}

// Scroll moves scenery left and wraps it around the screen.
type Scroll struct {
	Speed float64
	Width float64
}

func (s *Scroll) Update(w *shelf.World, e shelf.Entity, dt time.Duration) error {
	pos, ok := shelf.GetComponent[Position](w, e)
	if !ok {
		return nil
	}
	pos.X -= s.Speed * dt.Seconds()
	if pos.X < -s.Width/2 {
		pos.X += s.Width
	}
	return nil
}

// Cue changes the dino's state at a point in simulation time.
type Cue struct {
	At    time.Duration
	State DinoState
}

// Script replays cues against one entity, looping every Period.
type Script struct {
	Entity shelf.Entity
	Cues   []Cue
	Period time.Duration
}

func defaultScript(dino shelf.Entity) Script {
	return Script{
		Entity: dino,
		Period: 6 * time.Second,
		Cues: []Cue{
			{At: 0, State: Running},
			{At: 2 * time.Second, State: Jumping},
			{At: 2500 * time.Millisecond, State: Running},
			{At: 4 * time.Second, State: Ducking},
			{At: 5 * time.Second, State: Running},
		},
	}
}

// StateAt returns the state of the last cue at or before now.
func (s Script) StateAt(now time.Duration) DinoState {
	if s.Period > 0 {
		now %= s.Period
	}
	state := Running
	for _, cue := range s.Cues {
		if cue.At > now {
			break
		}
		state = cue.State
	}
	return state
}

// Apply writes the scripted state into the entity's driving component.
func (s Script) Apply(w *shelf.World) error {
	want := s.StateAt(w.Now())
	if current, ok := shelf.GetComponent[DinoState](w, s.Entity); ok && *current == want {
		return nil
	}
	return shelf.SetComponent(w, s.Entity, want)
}

// Scene is the set of entities the demo creates.
type Scene struct {
	Dino   shelf.Entity
	Clouds []shelf.Entity
}

const screenWidth = 640.0

func buildScene(w *shelf.World, catalog *anim.Catalog) (Scene, error) {
	var scene Scene

	scene.Dino = w.NewEntity()
	if err := shelf.AddComponent(w, scene.Dino, Running); err != nil {
		return scene, err
	}
	if err := shelf.AddComponent(w, scene.Dino, Position{X: -100}); err != nil {
		return scene, err
	}
	if err := anim.Attach(w, scene.Dino, catalog, dinoTag, Running); err != nil {
		return scene, err
	}

	cloudClip, err := catalog.ClipID("cloud")
	if err != nil {
		return scene, err
	}
	cloudFPS, err := catalog.ClipFPS(cloudClip)
	if err != nil {
		return scene, err
	}
	for i := 0; i < 3; i++ {
		cloud := w.NewEntity()
		a, err := anim.NewAnimation(catalog, cloudClip, cloudFPS)
		if err != nil {
			return scene, err
		}
		if err := shelf.AddComponent(w, cloud, Position{X: float64(i) * 200, Y: 120}); err != nil {
			return scene, err
		}
		if err := shelf.AddComponent(w, cloud, Scroll{Speed: 40 + 20*float64(i), Width: screenWidth}); err != nil {
			return scene, err
		}
		if err := shelf.AddComponent(w, cloud, a); err != nil {
			return scene, err
		}
		scene.Clouds = append(scene.Clouds, cloud)
	}
	return scene, nil
}

// renderer logs what a drawing backend would put on screen. It only reads.
type renderer struct {
	catalog *anim.Catalog
	logger  zerolog.Logger
	every   uint64
}

func (r renderer) Draw(w *shelf.World) error {
	if r.every == 0 || w.Tick()%r.every != 0 {
		return nil
	}
	for e, a := range shelf.Each[anim.Animation](w) {
		image, err := a.Image(r.catalog)
		if err != nil {
			return err
		}
		clip, err := r.catalog.Name(a.Clip())
		if err != nil {
			return err
		}
		event := r.logger.Info().
			Uint64("tick", w.Tick()).
			Int("entity", e.ID()).
			Str("clip", clip).
			Int("frame", a.CurrentFrame()).
			Str("image", image)
		if pos, ok := shelf.GetComponent[Position](w, e); ok {
			event = event.Float64("x", pos.X).Float64("y", pos.Y)
		}
		event.Msg("frame")
	}
	return nil
}
