package engine

import "time"

// Direction is an arrow navigation direction.
type Direction int

const (
	DirectionPrevious Direction = -1
	DirectionNext     Direction = 1
)

// State is what a frontend renders: the item aligned with the leading edge
// and the translation applied to the item group.
type State struct {
	Index  int
	Offset float64
}

// Animator applies translations. JumpTo moves instantly; AnimateTo transitions
// over duration and supersedes any transition still in flight.
type Animator interface {
	JumpTo(offset float64)
	AnimateTo(offset float64, duration time.Duration)
}

type nopAnimator struct{}

func (nopAnimator) JumpTo(float64)                   {}
func (nopAnimator) AnimateTo(float64, time.Duration) {}

// Controller is the navigation state machine. It owns the carousel state and
// the drag session; frontends forward input to it and render State.
//
// Controller is not safe for concurrent use. It is meant to be driven from a
// single event loop.
type Controller struct {
	config   Config
	animator Animator

	table   *Table
	state   State
	mounted bool

	tracker *DragTracker
	changed []func(State)
}

// NewController returns an unmounted controller. A nil animator is allowed.
func NewController(config Config, animator Animator) *Controller {
	config = config.Validate()
	if animator == nil {
		animator = nopAnimator{}
	}
	return &Controller{
		config:   config,
		animator: animator,
		tracker:  NewDragTracker(config.FPS),
	}
}

// Config returns the validated configuration.
func (c *Controller) Config() Config {
	return c.config
}

// OnChange registers fn to be called after every state change.
func (c *Controller) OnChange(fn func(State)) {
	if fn != nil {
		c.changed = append(c.changed, fn)
	}
}

// Mount builds the offset table from measured sizes and jumps, without
// animation, to the configured starting item.
func (c *Controller) Mount(itemSizes []float64, viewportSize float64) {
	c.table = NewTable(itemSizes, viewportSize, c.config.Infinite)
	c.mounted = true
	c.tracker.Cancel()

	index := min(max(c.config.StartingItemIndex, 0), c.table.Limit().Index)
	entry, _ := c.table.Entry(index)
	c.setState(State(entry))
	c.animator.JumpTo(entry.Offset)
}

// Remeasure rebuilds the offset table, keeping the current item if it is
// still reachable.
func (c *Controller) Remeasure(itemSizes []float64, viewportSize float64) {
	if !c.mounted {
		c.Mount(itemSizes, viewportSize)
		return
	}
	c.table = NewTable(itemSizes, viewportSize, c.config.Infinite)
	c.tracker.Cancel()

	index := min(max(c.state.Index, 0), c.table.Limit().Index)
	entry, _ := c.table.Entry(index)
	c.setState(State(entry))
	c.animator.JumpTo(entry.Offset)
}

// Unmount ends any drag in progress and marks the controller unmounted. All
// input is ignored until the next Mount.
func (c *Controller) Unmount() {
	c.tracker.Cancel()
	c.mounted = false
}

// Mounted reports whether Mount was called.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Table returns the offset table, or nil before Mount.
func (c *Controller) Table() *Table {
	return c.table
}

// Limit returns the boundary limit.
func (c *Controller) Limit() BoundaryLimit {
	if c.table == nil {
		return BoundaryLimit{}
	}
	return c.table.Limit()
}

// ItemCount returns the number of measured items.
func (c *Controller) ItemCount() int {
	if c.table == nil {
		return 0
	}
	return c.table.ItemCount()
}

// IsAtStart reports whether there is nothing before the current position.
func (c *Controller) IsAtStart() bool {
	return c.position() <= 0
}

// IsAtEnd reports whether the boundary limit has been reached.
func (c *Controller) IsAtEnd() bool {
	if c.table == nil {
		return true
	}
	return c.position() >= c.table.Len()-1
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.tracker.Active()
}

// ArrowClick moves to the neighbouring snap position. It returns false, and
// changes nothing, when there is no such position.
func (c *Controller) ArrowClick(direction Direction) bool {
	if !c.mounted {
		return false
	}
	entry, ok := c.table.At(c.position() + int(direction))
	if !ok {
		return false
	}
	return c.moveTo(entry)
}

// DotClick moves to the snap position covering item index. Unreachable
// indices are ignored.
func (c *Controller) DotClick(index int) bool {
	if !c.mounted || index < 0 || index >= c.table.ItemCount() {
		return false
	}
	entry, ok := c.table.Entry(index)
	if !ok {
		return false
	}
	return c.moveTo(entry)
}

// First moves to the first snap position.
func (c *Controller) First() bool {
	if !c.mounted {
		return false
	}
	entry, _ := c.table.At(0)
	return c.moveTo(entry)
}

// Last moves to the boundary limit.
func (c *Controller) Last() bool {
	if !c.mounted {
		return false
	}
	return c.moveTo(c.table.Limit().Entry())
}

// PointerDown starts a drag at position along the active axis.
func (c *Controller) PointerDown(position float64) {
	if !c.mounted {
		return
	}
	c.tracker.PointerDown(position, c.state.Offset)
}

// PointerMove lets the group follow the pointer. It returns true if the state
// changed; moves refused by the frame budget are kept for Flush.
func (c *Controller) PointerMove(position float64, now time.Time) bool {
	if !c.mounted {
		return false
	}
	candidate, ok := c.tracker.PointerMove(position, now)
	if !ok {
		return false
	}
	return c.follow(candidate)
}

// Flush applies the newest pointer position refused by the frame budget. Call
// it once per frame while dragging.
func (c *Controller) Flush() bool {
	if !c.mounted {
		return false
	}
	candidate, ok := c.tracker.Pending()
	if !ok {
		return false
	}
	return c.follow(candidate)
}

// PointerUp ends the drag. If the pointer moved, the group snaps to the
// nearest item boundary; otherwise nothing changes.
func (c *Controller) PointerUp() bool {
	if !c.mounted || !c.tracker.Active() {
		return false
	}
	session := c.tracker.Session()
	delta, ok := c.tracker.PointerUp()
	if !ok {
		if c.state.Offset != session.GroupPositionAtStart {
			c.setState(State{Index: c.state.Index, Offset: session.GroupPositionAtStart})
			c.animator.JumpTo(session.GroupPositionAtStart)
		}
		return false
	}

	sizes := c.table.sizes
	origin := IndexAtOffset(sizes, session.GroupPositionAtStart)
	entry := ResolveSnap(origin, -delta, sizes, c.table.Limit())
	c.setState(State(entry))
	c.animator.AnimateTo(entry.Offset, c.config.Duration())
	return true
}

func (c *Controller) follow(candidate float64) bool {
	offset := c.table.Clamp(candidate)
	if offset == c.state.Offset {
		return false
	}
	c.setState(State{Index: c.state.Index, Offset: offset})
	c.animator.JumpTo(offset)
	return true
}

func (c *Controller) moveTo(entry OffsetEntry) bool {
	if State(entry) == c.state {
		return false
	}
	c.tracker.Cancel()
	c.setState(State(entry))
	c.animator.AnimateTo(entry.Offset, c.config.Duration())
	return true
}

func (c *Controller) position() int {
	if c.table == nil {
		return 0
	}
	return c.table.Position(c.state.Index)
}

func (c *Controller) setState(state State) {
	c.state = state
	for _, fn := range c.changed {
		fn(state)
	}
}
