package dial

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/grindlemire/go-dial/internal/debug"
)

// Default rotation acceleration thresholds: detents arriving faster than
// these multiply the step count.
const (
	defaultAccel2x = 50 * time.Millisecond
	defaultAccel3x = 25 * time.Millisecond
)

// Controller turns raw rotary input into focus movement on one window.
// Nudges cross regions, rotation walks elements inside the focused
// region, and the center button selects. All entry points run
// synchronously on the caller's goroutine.
type Controller struct {
	window *Window
	finder Finder
	clock  clockwork.Clock

	accel2x time.Duration
	accel3x time.Duration

	lastRotateAt time.Time
}

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller) error

// WithFinder replaces the spatial search used for cross-region nudges.
// Default is BeamFinder.
func WithFinder(f Finder) ControllerOption {
	return func(c *Controller) error {
		if f == nil {
			return fmt.Errorf("finder cannot be nil")
		}
		c.finder = f
		return nil
	}
}

// WithAcceleration sets the rotation acceleration thresholds: detents
// arriving within accel2x multiply steps by two, within accel3x by
// three. Zero disables that tier.
func WithAcceleration(accel2x, accel3x time.Duration) ControllerOption {
	return func(c *Controller) error {
		if accel2x < 0 || accel3x < 0 {
			return fmt.Errorf("acceleration thresholds cannot be negative")
		}
		c.accel2x = accel2x
		c.accel3x = accel3x
		return nil
	}
}

// WithProfile applies a navigation profile's rotation settings.
func WithProfile(p Profile) ControllerOption {
	return func(c *Controller) error {
		if err := p.Validate(); err != nil {
			return err
		}
		c.accel2x = time.Duration(p.Rotation.Acceleration2xMS) * time.Millisecond
		c.accel3x = time.Duration(p.Rotation.Acceleration3xMS) * time.Millisecond
		return nil
	}
}

// WithInputClock replaces the clock used to timestamp detents for
// rotation acceleration.
func WithInputClock(clock clockwork.Clock) ControllerOption {
	return func(c *Controller) error {
		if clock == nil {
			return fmt.Errorf("input clock cannot be nil")
		}
		c.clock = clock
		return nil
	}
}

// NewController creates a Controller bound to the given window.
func NewController(w *Window, opts ...ControllerOption) (*Controller, error) {
	if w == nil {
		return nil, fmt.Errorf("controller requires a window")
	}
	c := &Controller{
		window:  w,
		finder:  BeamFinder{},
		clock:   clockwork.NewRealClock(),
		accel2x: defaultAccel2x,
		accel3x: defaultAccel3x,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewController creates a Controller and panics on error.
func MustNewController(w *Window, opts ...ControllerOption) *Controller {
	c, err := NewController(w, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Nudge routes one directional detent. The pipeline: leave touch mode if
// the user was touching, restore focus if nothing holds it, then try the
// focused region's shortcut, its explicit or remembered target region,
// and finally a spatial search across every other region's effective
// bounds. Returns whether the input moved focus (or was consumed leaving
// touch mode).
func (c *Controller) Nudge(dir Direction) bool {
	if !dir.IsValid() {
		return false
	}
	if c.exitTouchMode() {
		return true
	}

	focused := c.window.Focused()
	if focused == nil || focused.sink {
		return c.window.Sink().RestoreFocus(false)
	}

	region := focused.Region()
	if region != nil {
		args := DirectionBundle(dir)
		if region.PerformAction(ActionNudgeShortcut, args) {
			return true
		}
		if region.PerformAction(ActionNudgeToRegion, args) {
			return true
		}
	}
	return c.nudgeSpatially(region, focused, dir)
}

// nudgeSpatially asks the finder for the nearest region in the travel
// direction and sends it a focus action carrying the direction, so the
// gaining region records the way back.
func (c *Controller) nudgeSpatially(from *Region, focused *Element, dir Direction) bool {
	source := focused.Bounds()
	if from != nil {
		source = from.EffectiveBounds()
	}

	var (
		candidates []*Region
		rects      []Rect
	)
	for _, reg := range c.window.Regions() {
		if reg == from {
			continue
		}
		candidates = append(candidates, reg)
		rects = append(rects, reg.EffectiveBounds())
	}

	idx := c.finder.Find(source, dir, rects)
	if idx == -1 {
		debug.Log("Controller.nudgeSpatially: dir=%v no region found", dir)
		return false
	}
	debug.Log("Controller.nudgeSpatially: dir=%v -> %q", dir, candidates[idx].id)
	return candidates[idx].PerformAction(ActionFocus, DirectionBundle(dir))
}

// Rotate moves focus within the focused region by the given number of
// detents: positive forward in tree order, negative backward.
// Consecutive detents arriving faster than the acceleration thresholds
// multiply the step count so long spins cross long lists quickly.
// Without the region's wrap-around flag, rotation stops at the ends.
// Returns whether the input moved focus (or was consumed leaving touch
// mode).
func (c *Controller) Rotate(steps int) bool {
	if steps == 0 {
		return false
	}
	if c.exitTouchMode() {
		return true
	}
	steps *= c.accelerate()

	focused := c.window.Focused()
	if focused == nil || focused.sink {
		return c.window.Sink().RestoreFocus(false)
	}

	region := focused.Region()
	candidates := c.rotationCandidates(region)
	cur := -1
	for i, el := range candidates {
		if el == focused {
			cur = i
			break
		}
	}
	if cur == -1 || len(candidates) < 2 {
		return false
	}

	target := cur + steps
	if region != nil && region.wrapAround {
		target %= len(candidates)
		if target < 0 {
			target += len(candidates)
		}
	} else {
		target = max(0, min(len(candidates)-1, target))
	}
	if target == cur {
		return false
	}
	debug.Log("Controller.Rotate: steps=%d %q -> %q", steps, focused.id, candidates[target].id)
	return c.window.Focus(candidates[target])
}

// rotationCandidates collects, in tree order, the focusable elements
// sharing the focused element's region. Elements outside every region
// rotate among themselves.
func (c *Controller) rotationCandidates(region *Region) []*Element {
	var out []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		if !e.sink && e.CanTakeFocus() && e.Region() == region {
			out = append(out, e)
		}
		for _, child := range e.children {
			walk(child)
		}
	}
	walk(c.window.root)
	return out
}

// Select triggers the focused element's select handler (the center
// button press). Returns whether a handler ran (or the input was
// consumed leaving touch mode).
func (c *Controller) Select() bool {
	if c.exitTouchMode() {
		return true
	}
	focused := c.window.Focused()
	if focused == nil || focused.sink || focused.onSelect == nil {
		return false
	}
	focused.onSelect(focused)
	return true
}

// exitTouchMode consumes the current input to leave touch mode and
// restore focus, mirroring how a physical dial takes over from the
// touchscreen.
func (c *Controller) exitTouchMode() bool {
	if !c.window.IsTouchMode() {
		return false
	}
	debug.Log("Controller.exitTouchMode: leaving touch mode")
	c.window.SetTouchMode(false)
	c.window.Sink().RestoreFocus(false)
	return true
}

// accelerate converts detent timing into a step multiplier.
func (c *Controller) accelerate() int {
	now := c.clock.Now()
	elapsed := now.Sub(c.lastRotateAt)
	c.lastRotateAt = now
	switch {
	case c.accel3x > 0 && elapsed < c.accel3x:
		return 3
	case c.accel2x > 0 && elapsed < c.accel2x:
		return 2
	}
	return 1
}
