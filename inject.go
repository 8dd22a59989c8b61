package bounceback

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and converted to world coordinates via the
// scene camera, identical to real input.
type syntheticPointerEvent struct {
	pointerID        int
	screenX, screenY float64
	pressed          bool
}

// InjectGrab queues a press for the given pointer at screen coordinates.
// The event is consumed on the next frame's input pass.
func (s *Scene) InjectGrab(pointerID int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		screenX:   x,
		screenY:   y,
		pressed:   true,
	})
}

// InjectMove queues a move with the pointer held down. Use this between
// InjectGrab and InjectRelease to carry a grabbed node.
func (s *Scene) InjectMove(pointerID int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		screenX:   x,
		screenY:   y,
		pressed:   true,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(pointerID int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		screenX:   x,
		screenY:   y,
		pressed:   false,
	})
}

// InjectDrag queues a full grab sequence on pointer 0: press at
// (fromX, fromY), linearly interpolated moves over frames-2 intermediate
// frames, and release at (toX, toY). The total sequence consumes `frames`
// frames. Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectGrab(0, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(0, x, y)
	}
	s.InjectRelease(0, toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.pointerID, evt.screenX, evt.screenY, evt.pressed)
	return true
}
