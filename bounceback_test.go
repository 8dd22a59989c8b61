package bounceback

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateHeld, "held"},
		{StatePending, "pending"},
		{StateAnimating, "animating"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		e    EventType
		want string
	}{
		{EventGrabStart, "grab-start"},
		{EventGrabEnd, "grab-end"},
		{EventBounceStart, "bounce-start"},
		{EventBounceComplete, "bounce-complete"},
		{EventBounceCancel, "bounce-cancel"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

func TestPoseApproxEqual(t *testing.T) {
	q := mgl64.QuatRotate(0.8, Vec3{0, 1, 0})
	a := Pose{Position: Vec3{1, 2, 3}, Rotation: q}

	tests := []struct {
		name string
		b    Pose
		want bool
	}{
		{"same", a, true},
		{"negated quaternion", Pose{Position: a.Position, Rotation: q.Scale(-1)}, true},
		{"within tolerance", Pose{Position: Vec3{1, 2, 3 + 1e-9}, Rotation: q}, true},
		{"moved", Pose{Position: Vec3{1, 2, 3.1}, Rotation: q}, false},
		{"rotated", Pose{Position: a.Position, Rotation: mgl64.QuatIdent()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ApproxEqual(tt.b, 1e-6); got != tt.want {
				t.Errorf("ApproxEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLerpPoseEndpoints(t *testing.T) {
	from := Pose{Position: Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()}
	to := Pose{Position: Vec3{2, 4, 6}, Rotation: mgl64.QuatRotate(math.Pi/2, Vec3{1, 0, 0})}

	if got := lerpPose(from, to, 0); !got.ApproxEqual(from, 1e-9) {
		t.Errorf("t=0: %+v", got)
	}
	if got := lerpPose(from, to, 1); !got.ApproxEqual(to, 1e-9) {
		t.Errorf("t=1: %+v", got)
	}
	mid := lerpPose(from, to, 0.5)
	assertPosition(t, "mid", mid.Position, Vec3{1, 2, 3})
	want := mgl64.QuatRotate(math.Pi/4, Vec3{1, 0, 0})
	if !mid.Rotation.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("mid rotation = %v, want %v", mid.Rotation, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMouseButtonMapping(t *testing.T) {
	if MouseButtonLeft.ebitenButton() == MouseButtonRight.ebitenButton() {
		t.Error("left and right map to the same ebiten button")
	}
	if MouseButton(42).ebitenButton() != MouseButtonLeft.ebitenButton() {
		t.Error("unknown button should fall back to left")
	}
}
