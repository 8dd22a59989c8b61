package bounceback

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D vector used for positions, offsets and scales throughout the
// API.
type Vec3 = mgl64.Vec3

// Quat is a rotation quaternion. Rotations are expected to be unit length.
type Quat = mgl64.Quat

// Pose is a world-space position and orientation.
type Pose struct {
	Position Vec3
	Rotation Quat
}

// IdentityPose is the origin with no rotation.
var IdentityPose = Pose{Rotation: mgl64.QuatIdent()}

// ApproxEqual reports whether two poses match within the given tolerance.
// Quaternions q and -q describe the same rotation and compare equal.
func (p Pose) ApproxEqual(other Pose, eps float64) bool {
	if !p.Position.ApproxEqualThreshold(other.Position, eps) {
		return false
	}
	return p.Rotation.ApproxEqualThreshold(other.Rotation, eps) ||
		p.Rotation.ApproxEqualThreshold(other.Rotation.Scale(-1), eps)
}

// lerpPose blends position linearly and rotation spherically along the
// shorter arc.
func lerpPose(from, to Pose, t float64) Pose {
	if from.Rotation.Dot(to.Rotation) < 0 {
		to.Rotation = to.Rotation.Scale(-1)
	}
	return Pose{
		Position: from.Position.Add(to.Position.Sub(from.Position).Mul(t)),
		Rotation: mgl64.QuatSlerp(from.Rotation, to.Rotation, t),
	}
}

// State is the interaction state of a BounceBack.
type State uint8

const (
	StateIdle      State = iota // never grabbed, or returned home
	StateHeld                   // held by at least one selector
	StatePending                // released, waiting out the delay
	StateAnimating              // moving back toward the home pose
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHeld:
		return "held"
	case StatePending:
		return "pending"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction or lifecycle event.
type EventType uint8

const (
	EventGrabStart      EventType = iota // first selector entered a node
	EventGrabEnd                         // last selector exited a node
	EventBounceStart                     // delay elapsed, animation begins
	EventBounceComplete                  // animation reached the home pose
	EventBounceCancel                    // pending or running bounce was cancelled
)

func (e EventType) String() string {
	switch e {
	case EventGrabStart:
		return "grab-start"
	case EventGrabEnd:
		return "grab-end"
	case EventBounceStart:
		return "bounce-start"
	case EventBounceComplete:
		return "bounce-complete"
	case EventBounceCancel:
		return "bounce-cancel"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Rect is an axis-aligned screen rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
