package bounceback

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SmoothStep is the Hermite ease 3x²-2x³: zero velocity at both ends.
// It has the signature of a gween easing function.
func SmoothStep(t, b, c, d float32) float32 {
	x := t / d
	return c*x*x*(3-2*x) + b
}

var _ ease.TweenFunc = SmoothStep

// timeEpsilon absorbs floating-point drift when summed frame deltas are
// compared against a duration.
const timeEpsilon = 1e-6

// PoseTween animates a Manipulator's world pose from one pose to another.
// Elapsed time is tracked in float64; a gween tween on [0, 1] evaluates the
// easing at that time. Position is blended linearly and rotation spherically
// with the eased value. Call Update(dt) each frame. The tween finishes once
// elapsed time reaches the duration and writes the end pose exactly.
//
// There is no global animation manager; callers call Update themselves.
type PoseTween struct {
	tween    *gween.Tween
	target   Manipulator
	from, to Pose
	duration float64
	elapsed  float64
	progress float64
	Done     bool
}

// NewPoseTween creates a tween that moves target from `from` to `to` over
// duration seconds using the easing function.
func NewPoseTween(target Manipulator, from, to Pose, duration float64, fn ease.TweenFunc) *PoseTween {
	return &PoseTween{
		tween:    gween.New(0, 1, float32(duration), fn),
		target:   target,
		from:     from,
		to:       to,
		duration: duration,
	}
}

// Update advances the tween by dt seconds and writes the interpolated pose.
// No-op once Done.
func (p *PoseTween) Update(dt float64) {
	if p.Done {
		return
	}
	p.elapsed += dt
	if p.elapsed >= p.duration-timeEpsilon {
		p.Snap()
		return
	}
	val, _ := p.tween.Set(float32(p.elapsed))
	p.progress = clamp01(float64(val))
	p.target.SetWorldPose(lerpPose(p.from, p.to, p.progress))
}

// Snap writes the end pose and marks the tween done.
func (p *PoseTween) Snap() {
	p.target.SetWorldPose(p.to)
	p.progress = 1
	p.Done = true
}

// Progress returns the eased progress in [0, 1].
func (p *PoseTween) Progress() float64 {
	return p.progress
}

// From returns the start pose.
func (p *PoseTween) From() Pose {
	return p.from
}

// To returns the end pose.
func (p *PoseTween) To() Pose {
	return p.to
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
