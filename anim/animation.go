package anim

import (
	"time"

	"github.com/TheBitDrifter/shelf"
	"github.com/rotisserie/eris"
)

var _ shelf.Updater = &Animation{}

// Animation plays one clip at a fixed frame rate.
type Animation struct {
	clip         ClipID
	fps          int
	length       int
	currentFrame int
	frameTime    time.Duration
	nextFrameUpd time.Duration
	scheduled    bool
}

// NewAnimation looks up clip's length and returns an animation parked on frame 0.
func NewAnimation(assets Assets, clip ClipID, fps int) (Animation, error) {
	if fps <= 0 {
		return Animation{}, eris.Errorf("clip %d: fps must be positive, got %d", clip, fps)
	}
	length, err := assets.ClipLength(clip)
	if err != nil {
		return Animation{}, err
	}
	if length <= 0 {
		return Animation{}, eris.Errorf("clip %d has no frames", clip)
	}
	return Animation{
		clip:      clip,
		fps:       fps,
		length:    length,
		frameTime: time.Second / time.Duration(fps),
	}, nil
}

// Advance moves to the next frame once now reaches the scheduled frame time.
// The first call only anchors the schedule, so frame 0 is shown for a full frame.
func (a *Animation) Advance(now time.Duration) {
	if !a.scheduled {
		a.scheduled = true
		a.nextFrameUpd = now + a.frameTime
		return
	}
	if now < a.nextFrameUpd {
		return
	}
	a.currentFrame = (a.currentFrame + 1) % a.length
	a.nextFrameUpd = now + a.frameTime
}

// Update advances the animation against the world clock.
func (a *Animation) Update(w *shelf.World, _ shelf.Entity, _ time.Duration) error {
	a.Advance(w.Now())
	return nil
}

func (a Animation) Clip() ClipID {
	return a.clip
}

func (a Animation) FPS() int {
	return a.fps
}

func (a Animation) Len() int {
	return a.length
}

func (a Animation) CurrentFrame() int {
	return a.currentFrame
}

// NextFrameAt returns when the next frame is due; zero until the first Advance.
func (a Animation) NextFrameAt() time.Duration {
	return a.nextFrameUpd
}

// Image resolves the current frame through a frame source.
func (a Animation) Image(frames FrameSource) (string, error) {
	return frames.Frame(a.clip, a.currentFrame)
}
