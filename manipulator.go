package bounceback

// SelectContext carries selection transition data to manipulator listeners.
type SelectContext struct {
	Node       *Node
	SelectorID int
	Pose       Pose
}

// Manipulator is the capability a BounceBack drives: a movable world pose and
// the two selection transitions of an object that several selectors may hold
// at once.
type Manipulator interface {
	WorldPose() Pose
	SetWorldPose(Pose)
	OnFirstSelectEntered(fn func(SelectContext)) CallbackHandle
	OnLastSelectExited(fn func(SelectContext)) CallbackHandle
}

// --- Handler registry ---

type selectHandler struct {
	id uint32
	fn func(SelectContext)
}

type handlerRegistry struct {
	firstEntered []selectHandler
	lastExited   []selectHandler
	nextID       uint32
}

func (r *handlerRegistry) add(event EventType, fn func(SelectContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	switch event {
	case EventGrabStart:
		r.firstEntered = append(r.firstEntered, selectHandler{id: id, fn: fn})
	case EventGrabEnd:
		r.lastExited = append(r.lastExited, selectHandler{id: id, fn: fn})
	}
	return CallbackHandle{id: id, reg: r, event: event}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventGrabStart:
		h.reg.firstEntered = removeSelectHandler(h.reg.firstEntered, h.id)
	case EventGrabEnd:
		h.reg.lastExited = removeSelectHandler(h.reg.lastExited, h.id)
	}
}

func removeSelectHandler(s []selectHandler, id uint32) []selectHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- ObjectManipulator ---

// ObjectManipulator makes a Node grabbable. It tracks which selectors
// (pointers, hands, controllers) currently hold the node and reports only
// the unselected→selected and selected→unselected transitions.
type ObjectManipulator struct {
	node      *Node
	selectors []int
	handlers  handlerRegistry

	// emit is set by the owning scene to forward transitions to its
	// EntityStore.
	emit func(EventType, *Node, int)
}

func newObjectManipulator(n *Node) *ObjectManipulator {
	return &ObjectManipulator{node: n}
}

// Node returns the node this manipulator moves.
func (m *ObjectManipulator) Node() *Node {
	return m.node
}

// WorldPose returns the node's current world pose.
func (m *ObjectManipulator) WorldPose() Pose {
	return m.node.WorldPose()
}

// SetWorldPose moves the node to the given world pose.
func (m *ObjectManipulator) SetWorldPose(p Pose) {
	m.node.SetWorldPose(p)
}

// OnFirstSelectEntered registers a callback fired when the node goes from
// unselected to selected by any selector.
func (m *ObjectManipulator) OnFirstSelectEntered(fn func(SelectContext)) CallbackHandle {
	return m.handlers.add(EventGrabStart, fn)
}

// OnLastSelectExited registers a callback fired when the last selector
// releases the node.
func (m *ObjectManipulator) OnLastSelectExited(fn func(SelectContext)) CallbackHandle {
	return m.handlers.add(EventGrabEnd, fn)
}

// IsSelected reports whether any selector holds the node.
func (m *ObjectManipulator) IsSelected() bool {
	return len(m.selectors) > 0
}

// SelectorCount returns the number of selectors holding the node.
func (m *ObjectManipulator) SelectorCount() int {
	return len(m.selectors)
}

// HasSelector reports whether the given selector holds the node.
func (m *ObjectManipulator) HasSelector(selectorID int) bool {
	for _, id := range m.selectors {
		if id == selectorID {
			return true
		}
	}
	return false
}

// Select records that selectorID grabbed the node. Returns true if this
// was the first selector, in which case first-select-entered fired.
// Selecting with an id that already holds the node is a no-op.
func (m *ObjectManipulator) Select(selectorID int) bool {
	if m.node == nil || m.node.disposed || m.HasSelector(selectorID) {
		return false
	}
	m.selectors = append(m.selectors, selectorID)
	if len(m.selectors) != 1 {
		return false
	}
	m.fire(EventGrabStart, selectorID)
	return true
}

// Deselect records that selectorID released the node. Returns true if it
// was the last selector, in which case last-select-exited fired.
// Unknown ids are ignored.
func (m *ObjectManipulator) Deselect(selectorID int) bool {
	for i, id := range m.selectors {
		if id != selectorID {
			continue
		}
		copy(m.selectors[i:], m.selectors[i+1:])
		m.selectors = m.selectors[:len(m.selectors)-1]
		if len(m.selectors) != 0 {
			return false
		}
		m.fire(EventGrabEnd, selectorID)
		return true
	}
	return false
}

// fire dispatches a transition: manipulator listeners first, then the
// per-node callback, then the scene bridge.
func (m *ObjectManipulator) fire(event EventType, selectorID int) {
	n := m.node
	pose := n.WorldPose()
	sctx := SelectContext{Node: n, SelectorID: selectorID, Pose: pose}

	// Listeners may remove handles while dispatching, so run a snapshot.
	var handlers []selectHandler
	if event == EventGrabStart {
		handlers = append(handlers, m.handlers.firstEntered...)
	} else {
		handlers = append(handlers, m.handlers.lastExited...)
	}
	for _, h := range handlers {
		if h.fn != nil {
			h.fn(sctx)
		}
	}

	gctx := GrabContext{
		Node: n, EntityID: n.EntityID, UserData: n.UserData,
		SelectorID: selectorID, Pose: pose,
	}
	if event == EventGrabStart && n.OnGrabStart != nil {
		n.OnGrabStart(gctx)
	} else if event == EventGrabEnd && n.OnGrabEnd != nil {
		n.OnGrabEnd(gctx)
	}

	if m.emit != nil {
		m.emit(event, n, selectorID)
	}
}

// reset drops all selectors and listeners without firing anything.
func (m *ObjectManipulator) reset() {
	m.selectors = nil
	m.handlers = handlerRegistry{}
	m.emit = nil
}
