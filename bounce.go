package bounceback

import "errors"

var (
	// ErrNoManipulator is returned when attaching a BounceBack to a node
	// that has no ObjectManipulator.
	ErrNoManipulator = errors.New("bounceback: node has no manipulator")

	// ErrAlreadyAttached is returned when a node already carries a BounceBack.
	ErrAlreadyAttached = errors.New("bounceback: node already has a bounce back")
)

// bounceOp is one pending-then-animating sequence started by a release.
// It stays live only while its id matches the controller's generation.
type bounceOp struct {
	id      uint64
	elapsed float64 // delay accumulator, seconds
	tween   *PoseTween
}

// BounceBack returns a grabbable object to the pose it had when first
// grabbed. After the last selector lets go it waits Config.BounceBackDelay,
// then eases back over Config.BounceBackTime. Any grab before the return
// finishes stops it where it is.
//
// BounceBack is driven by Update once per frame; it never blocks and never
// starts goroutines.
type BounceBack struct {
	manip Manipulator
	node  *Node
	cfg   Config

	state        State
	home         Pose
	homeCaptured bool

	// generation is bumped by every grab start and release. An op acts only
	// while op.id == generation.
	generation uint64
	op         *bounceOp

	handles  [2]CallbackHandle
	detached bool

	emit func(EventType, *BounceBack)

	// OnStateChange, if set, is called after every state transition.
	OnStateChange func(from, to State)
}

// NewBounceBack subscribes a BounceBack to m's selection events. The caller
// must call Update every frame. Timings are normalized to MinDuration.
func NewBounceBack(m Manipulator, cfg Config) *BounceBack {
	b := &BounceBack{manip: m, cfg: cfg.normalized()}
	b.handles[0] = m.OnFirstSelectEntered(func(SelectContext) { b.OnGrabStart() })
	b.handles[1] = m.OnLastSelectExited(func(SelectContext) { b.OnGrabEnd() })
	return b
}

// AttachBounceBack attaches a BounceBack to node. The node must have had
// manipulation enabled, and may carry at most one BounceBack. The attached
// controller is advanced by the scene that owns node.
func AttachBounceBack(node *Node, cfg Config) (*BounceBack, error) {
	if node.manipulator == nil {
		return nil, ErrNoManipulator
	}
	if node.bounce != nil {
		return nil, ErrAlreadyAttached
	}
	b := NewBounceBack(node.manipulator, cfg)
	b.node = node
	node.bounce = b
	node.AddBehavior(b)
	return b, nil
}

// Config returns the normalized timings.
func (b *BounceBack) Config() Config {
	return b.cfg
}

// State returns the current interaction state.
func (b *BounceBack) State() State {
	return b.state
}

// Home returns the recorded home pose and whether it has been captured.
func (b *BounceBack) Home() (Pose, bool) {
	return b.home, b.homeCaptured
}

// Node returns the node this controller is attached to, or nil when it was
// built with NewBounceBack.
func (b *BounceBack) Node() *Node {
	return b.node
}

// Progress returns the eased animation progress in [0, 1]. It is 0 unless
// an animation is running.
func (b *BounceBack) Progress() float64 {
	if b.state != StateAnimating || b.op == nil || b.op.tween == nil {
		return 0
	}
	return b.op.tween.Progress()
}

// OnGrabStart handles the first selector entering. It cancels any pending
// or running return and, on the first grab ever, records the home pose.
// Safe to call with nothing pending.
func (b *BounceBack) OnGrabStart() {
	if b.detached {
		return
	}
	b.cancel()
	if !b.homeCaptured {
		b.homeCaptured = true
		b.home = b.manip.WorldPose()
	}
	b.setState(StateHeld)
}

// OnGrabEnd handles the last selector exiting. It starts the delay; the
// return begins on the Update where the delay has fully elapsed.
func (b *BounceBack) OnGrabEnd() {
	if b.detached || !b.homeCaptured {
		return
	}
	b.generation++
	b.op = &bounceOp{id: b.generation}
	b.setState(StatePending)
}

// Cancel stops a pending or running return, leaving the object where it is.
// The home pose is kept. No-op when nothing is pending.
func (b *BounceBack) Cancel() {
	if b.cancel() {
		b.setState(StateIdle)
	}
}

// cancel invalidates the live op, if any. Reports whether one was live.
func (b *BounceBack) cancel() bool {
	b.generation++
	if b.op == nil {
		return false
	}
	b.op = nil
	if b.state == StatePending || b.state == StateAnimating {
		b.fire(EventBounceCancel)
		return true
	}
	return false
}

// Update advances the delay or the animation by dt seconds. Non-positive
// and NaN dt are ignored.
func (b *BounceBack) Update(dt float64) {
	if b.detached || !(dt > 0) {
		return
	}
	op := b.op
	if op == nil || op.id != b.generation {
		return
	}

	if b.state == StatePending {
		op.elapsed += dt
		if op.elapsed < b.cfg.BounceBackDelay-timeEpsilon {
			return
		}
		// Time past the end of the delay counts toward the animation.
		dt = op.elapsed - b.cfg.BounceBackDelay
		op.tween = NewPoseTween(b.manip, b.manip.WorldPose(), b.home,
			b.cfg.BounceBackTime, SmoothStep)
		b.setState(StateAnimating)
		b.fire(EventBounceStart)
		if dt <= 0 {
			return
		}
	}

	if b.state != StateAnimating || op.tween == nil {
		return
	}
	op.tween.Update(dt)
	if op.tween.Done {
		b.op = nil
		b.setState(StateIdle)
		b.fire(EventBounceComplete)
	}
}

// Detach unsubscribes from the manipulator, stops any return and removes
// the controller from its node. A detached controller ignores all further
// events.
func (b *BounceBack) Detach() {
	if b.detached {
		return
	}
	b.cancel()
	b.setState(StateIdle)
	for _, h := range b.handles {
		h.Remove()
	}
	b.detached = true
	if b.node != nil {
		b.node.RemoveBehavior(b)
		if b.node.bounce == b {
			b.node.bounce = nil
		}
	}
}

func (b *BounceBack) setState(to State) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	if globalDebug {
		debugLogTransition(b, from, to)
	}
	if b.OnStateChange != nil {
		b.OnStateChange(from, to)
	}
}

func (b *BounceBack) fire(event EventType) {
	if b.emit != nil {
		b.emit(event, b)
	}
}
