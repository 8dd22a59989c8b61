package bounceback

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
)

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	lastX   float64 // screen
	lastY   float64
	grabbed *Node
	offset  Vec3 // grabbed node world position minus pointer world position
}

// --- Hit testing ---

// collectGrabbable walks the tree in depth-first order, appending visible,
// interactable nodes that carry a manipulator and a hit radius.
func collectGrabbable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if n.Interactable && n.manipulator != nil && n.HitRadius > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectGrabbable(child, buf)
	}
	return buf
}

// hitTest finds the grabbable node under the world point w in the XY plane.
// When several overlap, the one closest to the camera (largest world Z) wins;
// ties go to the later node in tree order. Returns nil if nothing is hit.
func (s *Scene) hitTest(w Vec3) *Node {
	s.hitBuf = collectGrabbable(s.root, s.hitBuf[:0])

	var best *Node
	var bestZ float64
	for _, n := range s.hitBuf {
		p := n.WorldPosition()
		dx := p[0] - w[0]
		dy := p[1] - w[1]
		if dx*dx+dy*dy > n.HitRadius*n.HitRadius {
			continue
		}
		if best == nil || p[2] >= bestZ {
			best = n
			bestZ = p[2]
		}
	}
	return best
}

// screenToWorld converts screen coordinates to the world plane using the
// scene camera. Without a camera, screen and world XY coincide.
func (s *Scene) screenToWorld(sx, sy float64) Vec3 {
	if s.camera != nil {
		return s.camera.ScreenToWorld(sx, sy)
	}
	return Vec3{sx, sy, 0}
}

// ebitenButton maps a MouseButton to the Ebitengine button.
func (b MouseButton) ebitenButton() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// --- Input processing ---

// processInput is called from Scene.Update() to handle mouse, touch and
// injected input. An injected event replaces real mouse input for the frame.
func (s *Scene) processInput() {
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(s.grabButton.ebitenButton())
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the grab state machine for a single pointer. The
// pointer id doubles as the selector id on the grabbed node's manipulator.
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	w := s.screenToWorld(sx, sy)

	// The grabbed node may have been disposed since the last frame.
	if ps.grabbed != nil && (ps.grabbed.disposed || ps.grabbed.manipulator == nil) {
		ps.grabbed = nil
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = sx, sy
		// Presses outside the camera viewport never grab.
		if s.camera != nil && !s.camera.Viewport.Contains(sx, sy) {
			return
		}
		target := s.hitTest(w)
		if target == nil {
			return
		}
		if target.manipulator.emit == nil {
			s.bindManipulator(target.manipulator)
		}
		ps.grabbed = target
		ps.offset = target.WorldPosition().Sub(w)
		target.manipulator.Select(pointerID)

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = sx, sy
		if ps.grabbed == nil {
			return
		}
		pose := ps.grabbed.WorldPose()
		pose.Position = Vec3{w[0] + ps.offset[0], w[1] + ps.offset[1], pose.Position[2]}
		ps.grabbed.SetWorldPose(pose)

	case !pressed && ps.down:
		if ps.grabbed != nil {
			ps.grabbed.manipulator.Deselect(pointerID)
		}
		ps.down = false
		ps.grabbed = nil
	}
}
