package bounceback

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorldPositionComposesParents(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.SetPosition(10, 20, 0)
	root.SetScale(2, 2, 2)
	child.SetPosition(1, 1, 1)
	root.AddChild(child)

	assertPosition(t, "world", child.WorldPosition(), Vec3{12, 22, 2})
}

func TestWorldPositionWithParentRotation(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.SetRotation(mgl64.QuatRotate(math.Pi/2, Vec3{0, 0, 1}))
	child.SetPosition(1, 0, 0)
	root.AddChild(child)

	// +X rotated 90° about Z is +Y.
	assertPosition(t, "world", child.WorldPosition(), Vec3{0, 1, 0})
}

func TestWorldRotationComposes(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.SetRotation(mgl64.QuatRotate(math.Pi/4, Vec3{0, 0, 1}))
	child.SetRotation(mgl64.QuatRotate(math.Pi/4, Vec3{0, 0, 1}))
	root.AddChild(child)

	want := mgl64.QuatRotate(math.Pi/2, Vec3{0, 0, 1})
	if !child.WorldPose().ApproxEqual(Pose{Position: Vec3{}, Rotation: want}, 1e-9) {
		t.Errorf("WorldRotation = %v, want %v", child.WorldRotation(), want)
	}
}

func TestSetWorldPoseRoundTrip(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.SetPosition(-3, 4, 1)
	root.SetRotation(mgl64.QuatRotate(0.7, Vec3{1, 1, 0}.Normalize()))
	root.AddChild(child)

	target := Pose{
		Position: Vec3{5, -2, 8},
		Rotation: mgl64.QuatRotate(1.3, Vec3{0, 1, 0}),
	}
	child.SetWorldPose(target)
	if got := child.WorldPose(); !got.ApproxEqual(target, 1e-9) {
		t.Errorf("WorldPose = %+v, want %+v", got, target)
	}
}

func TestSetWorldPoseKeepsScale(t *testing.T) {
	n := NewNode("n")
	n.SetScale(3, 3, 3)
	n.SetWorldPose(Pose{Position: Vec3{1, 2, 3}, Rotation: mgl64.QuatIdent()})
	if n.Scale != (Vec3{3, 3, 3}) {
		t.Errorf("Scale = %v, want (3,3,3)", n.Scale)
	}
}

func TestWorldToLocalInverse(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(5, 5, 0)
	n.SetScale(2, 2, 2)
	n.SetRotation(mgl64.QuatRotate(0.3, Vec3{0, 0, 1}))

	local := Vec3{1.5, -2, 0.5}
	world := n.LocalToWorld(local)
	assertPosition(t, "round trip", n.WorldToLocal(world), local)
}

func TestWorldToLocalSingular(t *testing.T) {
	n := NewNode("n")
	n.SetScale(0, 1, 1)
	if got := n.WorldToLocal(Vec3{3, 3, 3}); got != (Vec3{}) {
		t.Errorf("WorldToLocal on singular matrix = %v, want zero", got)
	}
}

func TestWorldMatrixIdentity(t *testing.T) {
	n := NewNode("n")
	if !n.WorldMatrix().ApproxEqual(mgl64.Ident4()) {
		t.Errorf("WorldMatrix = %v, want identity", n.WorldMatrix())
	}
}
