package bounceback

import "github.com/go-gl/mathgl/mgl64"

// computeLocalMatrix computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func computeLocalMatrix(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := n.Rotation.Mat4()
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node's local-to-world matrix, composed from the
// root down. It is recomputed on every call.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	local := computeLocalMatrix(n)
	if n.Parent == nil {
		return local
	}
	return n.Parent.WorldMatrix().Mul4(local)
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldRotation returns the node's orientation in world space. Scale on
// ancestors is ignored.
func (n *Node) WorldRotation() Quat {
	if n.Parent == nil {
		return n.Rotation
	}
	return n.Parent.WorldRotation().Mul(n.Rotation).Normalize()
}

// WorldPose returns the node's world position and orientation.
func (n *Node) WorldPose() Pose {
	return Pose{Position: n.WorldPosition(), Rotation: n.WorldRotation()}
}

// SetWorldPose moves the node so that its world position and orientation
// match p. The local transform is solved against the parent's world
// transform; Scale is left untouched.
func (n *Node) SetWorldPose(p Pose) {
	if n.Parent == nil {
		n.Position = p.Position
		n.Rotation = p.Rotation
		return
	}
	n.Position = n.Parent.WorldToLocal(p.Position)
	n.Rotation = n.Parent.WorldRotation().Inverse().Mul(p.Rotation).Normalize()
}

// --- Transform property setters ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
}

// SetRotation sets the node's local rotation.
func (n *Node) SetRotation(q Quat) {
	n.Rotation = q
}

// SetScale sets the node's local scale.
func (n *Node) SetScale(sx, sy, sz float64) {
	n.Scale = Vec3{sx, sy, sz}
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
// A singular world matrix (zero scale) maps every point to the origin.
func (n *Node) WorldToLocal(w Vec3) Vec3 {
	m := n.WorldMatrix()
	if det := m.Det(); det > -1e-12 && det < 1e-12 {
		return Vec3{}
	}
	return m.Inv().Mul4x1(w.Vec4(1)).Vec3()
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(l Vec3) Vec3 {
	return n.WorldMatrix().Mul4x1(l.Vec4(1)).Vec3()
}
