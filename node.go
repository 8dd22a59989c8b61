package bounceback

import "github.com/go-gl/mathgl/mgl64"

// GrabContext carries grab event data to per-node and scene-level callbacks.
type GrabContext struct {
	Node       *Node
	EntityID   uint32
	UserData   any
	SelectorID int
	Pose       Pose
}

// Behavior is a per-frame component attached to a Node. The scene advances
// every behavior of every live node once per Update.
type Behavior interface {
	Update(dt float64)
}

// --- ID counter ---

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a scene graph element with a 3D transform. A single flat struct is
// used for every node.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position Vec3
	Rotation Quat
	Scale    Vec3

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// HitRadius is the pick radius in world units, measured in the XY plane.
	// Zero disables picking.
	HitRadius float64

	// Metadata
	UserData any
	EntityID uint32

	manipulator *ObjectManipulator
	bounce      *BounceBack
	behaviors   []Behavior

	// Per-node callbacks (nil by default)
	OnGrabStart func(GrabContext)
	OnGrabEnd   func(GrabContext)

	disposed bool
}

// NewNode creates a node at the origin with identity rotation and unit scale.
func NewNode(name string) *Node {
	return &Node{
		ID:       nextNodeID(),
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    Vec3{1, 1, 1},
		Visible:  true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("bounceback: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("bounceback: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("bounceback: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Components ---

// EnableManipulation gives the node an ObjectManipulator and makes it
// interactable. Calling it again returns the existing manipulator.
func (n *Node) EnableManipulation() *ObjectManipulator {
	if n.manipulator == nil {
		n.manipulator = newObjectManipulator(n)
	}
	n.Interactable = true
	return n.manipulator
}

// Manipulator returns the node's ObjectManipulator, or nil if manipulation
// was never enabled.
func (n *Node) Manipulator() *ObjectManipulator {
	return n.manipulator
}

// BounceBack returns the node's attached BounceBack, or nil.
func (n *Node) BounceBack() *BounceBack {
	return n.bounce
}

// AddBehavior registers b to be advanced every scene update.
func (n *Node) AddBehavior(b Behavior) {
	n.behaviors = append(n.behaviors, b)
}

// RemoveBehavior unregisters b. No-op if b is not attached.
func (n *Node) RemoveBehavior(b Behavior) {
	for i, existing := range n.behaviors {
		if existing == b {
			copy(n.behaviors[i:], n.behaviors[i+1:])
			n.behaviors[len(n.behaviors)-1] = nil
			n.behaviors = n.behaviors[:len(n.behaviors)-1]
			return
		}
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, detaches
// its components and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.bounce != nil {
		n.bounce.Detach()
		n.bounce = nil
	}
	if n.manipulator != nil {
		n.manipulator.reset()
		n.manipulator = nil
	}
	n.children = nil
	n.behaviors = nil
	n.Parent = nil
	n.UserData = nil
	n.OnGrabStart = nil
	n.OnGrabEnd = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// updateBehaviors advances every behavior in the subtree by dt.
func updateBehaviors(n *Node, dt float64) {
	if n.disposed {
		return
	}
	for i := 0; i < len(n.behaviors); i++ {
		n.behaviors[i].Update(dt)
		if n.disposed {
			return
		}
	}
	for i := 0; i < len(n.children); i++ {
		updateBehaviors(n.children[i], dt)
	}
}
