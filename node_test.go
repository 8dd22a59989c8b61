package bounceback

import "testing"

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.Name != "test" {
		t.Errorf("Name = %q, want test", n.Name)
	}
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if !n.Visible {
		t.Error("Visible should default to true")
	}
	if n.Interactable {
		t.Error("Interactable should default to false")
	}
	if n.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1,1,1)", n.Scale)
	}
	if n.Rotation != IdentityPose.Rotation {
		t.Errorf("Rotation = %v, want identity", n.Rotation)
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	if a.ID == b.ID {
		t.Errorf("duplicate ID %d", a.ID)
	}
}

func TestAddChildReparents(t *testing.T) {
	p1, p2, c := NewNode("p1"), NewNode("p2"), NewNode("c")
	p1.AddChild(c)
	p2.AddChild(c)
	if c.Parent != p2 {
		t.Error("child parent should be p2")
	}
	if p1.NumChildren() != 0 || p2.NumChildren() != 1 {
		t.Errorf("children p1=%d p2=%d", p1.NumChildren(), p2.NumChildren())
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewNode("a").AddChild(nil)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParent(t *testing.T) {
	p, c := NewNode("p"), NewNode("c")
	p.AddChild(c)
	c.RemoveFromParent()
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child not detached")
	}
	c.RemoveFromParent() // no-op
}

func TestEnableManipulationIdempotent(t *testing.T) {
	n := NewNode("n")
	m1 := n.EnableManipulation()
	m2 := n.EnableManipulation()
	if m1 != m2 || n.Manipulator() != m1 {
		t.Error("EnableManipulation should return the existing manipulator")
	}
	if !n.Interactable {
		t.Error("EnableManipulation should make the node interactable")
	}
	if m1.Node() != n {
		t.Error("manipulator node mismatch")
	}
}

type countingBehavior struct {
	total float64
	calls int
}

func (c *countingBehavior) Update(dt float64) {
	c.total += dt
	c.calls++
}

func TestBehaviorsUpdatedRecursively(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.AddChild(child)
	a, b := &countingBehavior{}, &countingBehavior{}
	root.AddBehavior(a)
	child.AddBehavior(b)

	updateBehaviors(root, 0.25)
	updateBehaviors(root, 0.25)

	if a.calls != 2 || b.calls != 2 || b.total != 0.5 {
		t.Errorf("a=%+v b=%+v", a, b)
	}

	child.RemoveBehavior(b)
	child.RemoveBehavior(b) // no-op
	updateBehaviors(root, 0.25)
	if b.calls != 2 {
		t.Errorf("removed behavior still updated: %d", b.calls)
	}
}

type disposingBehavior struct {
	node *Node
}

func (d *disposingBehavior) Update(float64) { d.node.Dispose() }

func TestBehaviorDisposingNodeStopsWalk(t *testing.T) {
	root, child := NewNode("root"), NewNode("child")
	root.AddChild(child)
	after := &countingBehavior{}
	child.AddBehavior(&disposingBehavior{node: child})
	child.AddBehavior(after)

	updateBehaviors(root, 0.1)
	if after.calls != 0 {
		t.Error("behavior ran on a node disposed earlier in the same update")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed child still attached")
	}
}

func TestDisposeRecursive(t *testing.T) {
	root, mid, leaf := NewNode("root"), NewNode("mid"), NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	leaf.EnableManipulation()
	leaf.Manipulator().Select(0)

	mid.Dispose()

	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("descendants should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("mid should be removed from root")
	}
	if leaf.Manipulator() != nil || leaf.ID != 0 {
		t.Error("disposed node kept its components")
	}
	mid.Dispose() // double dispose is a no-op
}

func TestDebugPanicsOnDisposedAddChild(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewNode("gone")
	n.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	s.Root().AddChild(n)
}
