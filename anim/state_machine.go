package anim

import (
	"fmt"
	"time"

	"github.com/TheBitDrifter/shelf"
)

// AnimStateMachine selects the Animation of its entity from a driving component
// of type S on the same entity.
type AnimStateMachine[S comparable] struct {
	assets       Assets
	tag          AssetTag
	currentState S
	currentClip  ClipID
	current      Animation
}

// NewAnimStateMachine resolves the clip bound to start and prepares its Animation.
func NewAnimStateMachine[S comparable](assets Assets, tag AssetTag, start S) (AnimStateMachine[S], error) {
	clip, current, err := animationFor(assets, tag, start)
	if err != nil {
		return AnimStateMachine[S]{}, err
	}
	return AnimStateMachine[S]{
		assets:       assets,
		tag:          tag,
		currentState: start,
		currentClip:  clip,
		current:      current,
	}, nil
}

// Attach adds a state machine and the Animation for its start state to e.
func Attach[S comparable](h shelf.Handle, e shelf.Entity, assets Assets, tag AssetTag, start S) error {
	m, err := NewAnimStateMachine(assets, tag, start)
	if err != nil {
		return err
	}
	if err := shelf.AddComponent(h, e, m); err != nil {
		return err
	}
	return shelf.AddComponent(h, e, m.Animation())
}

// Update installs a fresh Animation when the driving state has changed since the
// last tick. An entity without a driving component is left alone.
func (m *AnimStateMachine[S]) Update(w *shelf.World, e shelf.Entity, _ time.Duration) error {
	state, ok := shelf.GetComponent[S](w, e)
	if !ok || *state == m.currentState {
		return nil
	}
	clip, next, err := animationFor(m.assets, m.tag, *state)
	if err != nil {
		return err
	}
	m.currentState = *state
	m.currentClip = clip
	m.current = next
	return shelf.SetComponent(w, e, next)
}

func (m AnimStateMachine[S]) Tag() AssetTag {
	return m.tag
}

func (m AnimStateMachine[S]) CurrentState() S {
	return m.currentState
}

func (m AnimStateMachine[S]) CurrentClip() ClipID {
	return m.currentClip
}

// Animation returns the animation most recently built for the current state.
func (m AnimStateMachine[S]) Animation() Animation {
	return m.current
}

// StateKey is the catalog key for a state value.
func StateKey[S comparable](state S) string {
	return fmt.Sprint(state)
}

func animationFor[S comparable](assets Assets, tag AssetTag, state S) (ClipID, Animation, error) {
	clip, err := assets.ClipForState(tag, StateKey(state))
	if err != nil {
		return 0, Animation{}, err
	}
	fps, err := assets.ClipFPS(clip)
	if err != nil {
		return 0, Animation{}, err
	}
	a, err := NewAnimation(assets, clip, fps)
	if err != nil {
		return 0, Animation{}, err
	}
	return clip, a, nil
}
