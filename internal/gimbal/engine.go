package gimbal

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/gimbal/internal/geometry"
)

// DragState tracks where the engine is in the pointer-down/move/up cycle.
type DragState int

const (
	DragIdle DragState = iota
	// DragWait means the pointer is down but it is still ambiguous whether
	// this is a click or the start of a drag.
	DragWait
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragWait:
		return "wait"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// ActivationState reports whether the gimbal is currently being manipulated.
// Hosts use it to apply an active/idle visual state and a cursor override.
type ActivationState int

const (
	ActivationIdle ActivationState = iota
	ActivationActive
)

const (
	// DefaultMouseTimeout is the debounce window distinguishing a click
	// from the start of a drag.
	DefaultMouseTimeout = 100 * time.Millisecond
	// cursorRestoreDelay is the grace period before the cursor override is
	// released, avoiding flicker when rapidly re-engaging the handle.
	cursorRestoreDelay = 10 * time.Millisecond
)

// Options configures a new Engine. Axis, rules, timeout and cursor are fixed
// for the instance's lifetime; re-supplying rules via SetRules recomputes
// bounds but does not restart the state machine.
type Options struct {
	Axis AxisConfig

	// Maximum and Minimum constrain the handle position.
	Maximum LimitRule
	Minimum LimitRule

	// Default is the double-click reset position. Nil disables the reset;
	// a non-nil rule with no fields set falls back to 50 percent.
	Default *LimitRule

	// HandleOffset is the handle's half-thickness, used to center the
	// split point on the handle rather than its leading edge.
	HandleOffset int

	// MouseTimeout overrides DefaultMouseTimeout when positive.
	MouseTimeout time.Duration

	// Cursor is the override string reported to OnCursor while active.
	Cursor string

	// OnResize receives the computed before/after sizes on every split
	// change, at most once per frame during pointer movement.
	OnResize func(Event)

	// OnCursor receives the cursor override on activation and the empty
	// string when the override is released.
	OnCursor func(cursor string)

	// Scheduler supplies the timer and frame primitives. Defaults to a
	// wall-clock scheduler whose callbacks arrive on timer goroutines.
	Scheduler Scheduler
}

// Engine is the drag state machine for one gimbal instance. All state is
// owned by the instance and must only be touched from the host's single
// event-dispatch thread.
type Engine struct {
	id  string
	log *logrus.Entry

	axis         AxisConfig
	maxRule      LimitRule
	minRule      LimitRule
	defaultRule  *LimitRule
	handleOffset int
	timeout      time.Duration
	cursor       string

	sched    Scheduler
	onResize func(Event)
	onCursor func(string)

	// Measured container geometry along the active axis.
	limit   int
	leading int
	bounds  ResolvedBounds

	drag       DragState
	activation ActivationState

	// pressSeq invalidates click-window timers from earlier presses;
	// cursorSeq invalidates cursor-restore timers from earlier releases.
	// A stale timer observing a bumped sequence is a no-op.
	pressSeq  int
	cursorSeq int

	framePending bool
	pendingPos   int
}

// New constructs an Engine. The container is unmeasured (zero-size) until
// the host calls SetMeasurement; every emission until then is {0px, 0px}.
func New(opts Options) *Engine {
	e := &Engine{
		id:           uuid.NewString(),
		axis:         opts.Axis,
		maxRule:      opts.Maximum,
		minRule:      opts.Minimum,
		defaultRule:  opts.Default,
		handleOffset: opts.HandleOffset,
		timeout:      opts.MouseTimeout,
		cursor:       opts.Cursor,
		sched:        opts.Scheduler,
		onResize:     opts.OnResize,
		onCursor:     opts.OnCursor,
	}
	if e.timeout <= 0 {
		e.timeout = DefaultMouseTimeout
	}
	if e.sched == nil {
		e.sched = wallScheduler{}
	}
	if e.onResize == nil {
		e.onResize = func(Event) {}
	}
	if e.onCursor == nil {
		e.onCursor = func(string) {}
	}
	e.log = logrus.WithField("gimbal_id", e.id)
	e.recomputeBounds()
	return e
}

// SetMeasurement records the container's current content size and leading
// edge offset along the active axis and recomputes the resolved bounds.
// Hosts call it on creation and on every detected resize or layout change.
func (e *Engine) SetMeasurement(size, offset int) {
	if size < 0 {
		size = 0
	}
	e.limit = size
	e.leading = offset
	e.recomputeBounds()
}

// SetRules re-supplies the min/max constraints and recomputes bounds. The
// state machine is untouched.
func (e *Engine) SetRules(maxRule, minRule LimitRule) {
	e.maxRule = maxRule
	e.minRule = minRule
	e.recomputeBounds()
}

func (e *Engine) recomputeBounds() {
	e.bounds = ResolveBounds(e.axis.Reverse, e.limit, e.handleOffset, e.maxRule, e.minRule)
	e.log.WithFields(logrus.Fields{
		"limit":   e.limit,
		"minimum": e.bounds.Minimum,
		"maximum": e.bounds.Maximum,
	}).Debug("bounds resolved")
}

// Bounds returns the currently resolved bounds.
func (e *Engine) Bounds() ResolvedBounds { return e.bounds }

// Drag returns the current drag state.
func (e *Engine) Drag() DragState { return e.drag }

// Activation returns the current activation state.
func (e *Engine) Activation() ActivationState { return e.activation }

// Active reports whether the gimbal is currently being manipulated.
func (e *Engine) Active() bool { return e.activation == ActivationActive }

// Cursor returns the override string hosts should apply while active.
func (e *Engine) Cursor() string { return e.cursor }

// Pointer feeds one raw pointer notification through the transition
// function.
func (e *Engine) Pointer(in PointerInput) {
	switch in := in.(type) {
	case HandleDown:
		e.handleDown()
	case GlobalDown:
		e.globalDown()
	case GlobalUp:
		e.globalUp()
	case Move:
		e.move(in.Pos)
	case DoubleClick:
		e.doubleClick()
	}
}

func (e *Engine) handleDown() {
	if e.drag != DragIdle {
		return
	}
	e.drag = DragWait
	e.activate()
	seq := e.pressSeq
	e.sched.AfterFunc(e.timeout, func() { e.clickWindowElapsed(seq) })
	e.log.Debug("handle pressed, waiting out click window")
}

// clickWindowElapsed fires when the mouse timeout expires. If the press was
// released or cancelled in the meantime the sequence no longer matches and
// the timer is a no-op. Otherwise the press is confirmed as a click: the
// drag state returns to idle while the gimbal stays active until the next
// global up or down.
func (e *Engine) clickWindowElapsed(seq int) {
	if seq != e.pressSeq || e.drag != DragWait {
		return
	}
	e.drag = DragIdle
	e.log.Debug("click confirmed, not a drag")
}

func (e *Engine) globalDown() {
	if e.activation != ActivationActive {
		return
	}
	// A press anywhere off the handle cancels without emitting.
	e.deactivate()
	e.log.Debug("cancelled by global press")
}

func (e *Engine) globalUp() {
	if e.drag == DragWait {
		// An up while still waiting promotes the ambiguous press to a
		// confirmed drag, which the release then immediately ends.
		e.drag = DragDragging
	}
	if e.activation != ActivationActive {
		return
	}
	e.deactivate()
	e.log.Debug("released")
}

func (e *Engine) move(pos int) {
	if e.activation != ActivationActive {
		return
	}
	e.pendingPos = pos
	if e.framePending {
		return
	}
	e.framePending = true
	e.sched.OnFrame(e.flushMove)
}

// flushMove emits the most recent pointer position, collapsing every raw
// move event that arrived within the frame into a single emission.
func (e *Engine) flushMove() {
	e.framePending = false
	if e.activation != ActivationActive {
		return
	}
	e.emit(e.pendingPos - e.leading)
}

func (e *Engine) doubleClick() {
	e.drag = DragIdle
	e.pressSeq++
	d := e.defaultRule
	if d == nil {
		return
	}
	var pos int
	switch {
	case d.Pixels != nil:
		pos = *d.Pixels
	case d.Percent != nil:
		pos = geometry.PixelsFromPercentage(*d.Percent, e.limit)
	default:
		pos = geometry.PixelsFromPercentage(50, e.limit)
	}
	e.log.WithField("pos", pos).Debug("reset to default position")
	e.emit(pos)
}

// emit runs the resize computation on a container-relative raw position and
// delivers the resulting split.
func (e *Engine) emit(raw int) {
	if e.limit <= 0 {
		// Missing or zero-size anchor: degenerate split, never an error.
		e.onResize(Event{Before: geometry.FormatPixels(0), After: geometry.FormatPixels(0)})
		return
	}
	clamped := geometry.Clamp(raw, e.bounds.Minimum, e.bounds.Maximum)
	before := clamped - e.bounds.Offset
	after := e.limit - before
	e.onResize(Event{
		Before: geometry.FormatPixels(before),
		After:  geometry.FormatPixels(after),
	})
}

func (e *Engine) activate() {
	e.activation = ActivationActive
	e.cursorSeq++
	e.onCursor(e.cursor)
}

func (e *Engine) deactivate() {
	e.drag = DragIdle
	e.activation = ActivationIdle
	e.pressSeq++
	e.cursorSeq++
	seq := e.cursorSeq
	e.sched.AfterFunc(cursorRestoreDelay, func() { e.restoreCursor(seq) })
}

// restoreCursor releases the cursor override unless the gimbal was
// re-engaged during the grace period.
func (e *Engine) restoreCursor(seq int) {
	if seq != e.cursorSeq || e.activation == ActivationActive {
		return
	}
	e.onCursor("")
}
