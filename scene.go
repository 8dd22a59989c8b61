package bounceback

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, grab and bounce events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries grab and bounce lifecycle data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	NodeID   uint32
	EntityID uint32
	// SelectorID is valid for EventGrabStart and EventGrabEnd.
	SelectorID int
	// Pose is the node's world pose when the event fired.
	Pose Pose
	// Home is the recorded home pose (bounce events only).
	Home Pose
}

// Scene is the top-level object that owns the node tree, the camera and
// input state, and advances node behaviors every frame.
type Scene struct {
	root   *Node
	store  EntityStore
	camera *Camera
	debug  bool

	grabButton MouseButton

	updateFunc func() error
	testRunner *TestRunner

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{root: NewNode("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetCamera sets the camera used to map screen input onto the world plane.
// A nil camera maps screen coordinates straight to world XY.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the scene camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetGrabButton selects the mouse button that grabs. Defaults to
// MouseButtonLeft. Touch input always grabs.
func (s *Scene) SetGrabButton(b MouseButton) {
	s.grabButton = b
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick of the Ebitengine clock.
func (s *Scene) Update() error {
	return s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances the scene by dt seconds: the script runner steps,
// input is processed (which may start or end grabs), the camera moves, and
// every node behavior is advanced.
func (s *Scene) UpdateDelta(dt float64) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.camera != nil {
		s.camera.update(float32(dt))
	}
	updateBehaviors(s.root, dt)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// AttachBounceBack enables manipulation on node if needed, attaches a
// BounceBack and wires its events to the scene's EntityStore.
func (s *Scene) AttachBounceBack(node *Node, cfg Config) (*BounceBack, error) {
	m := node.EnableManipulation()
	b, err := AttachBounceBack(node, cfg)
	if err != nil {
		return nil, err
	}
	s.bindManipulator(m)
	b.emit = s.emitBounceEvent
	return b, nil
}

// bindManipulator routes m's selection transitions to the entity store.
func (s *Scene) bindManipulator(m *ObjectManipulator) {
	m.emit = s.emitGrabEvent
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and state transitions and
// forwarded events are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// and controller operations (which lack a Scene pointer) can check it
// cheaply. Only valid with a single Scene.
var globalDebug bool

// --- ECS bridge ---

func (s *Scene) emitGrabEvent(event EventType, n *Node, selectorID int) {
	if s.debug {
		debugLogEvent(event, n, selectorID)
	}
	if s.store == nil {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:       event,
		NodeID:     n.ID,
		EntityID:   n.EntityID,
		SelectorID: selectorID,
		Pose:       n.WorldPose(),
	})
}

func (s *Scene) emitBounceEvent(event EventType, b *BounceBack) {
	n := b.node
	if s.debug {
		debugLogEvent(event, n, -1)
	}
	if s.store == nil || n == nil {
		return
	}
	home, _ := b.Home()
	s.store.EmitEvent(InteractionEvent{
		Type:       event,
		NodeID:     n.ID,
		EntityID:   n.EntityID,
		SelectorID: -1,
		Pose:       n.WorldPose(),
		Home:       home,
	})
}
