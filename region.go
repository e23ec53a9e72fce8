package dial

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// defaultHistoryTTL is how long navigation history stays fresh unless a
// profile or an explicit cache says otherwise.
const defaultHistoryTTL = 10 * time.Second

// Region is the navigable container the rotary engine nudges between.
// It owns a container element, the region's navigation policy (default
// focus, shortcut, explicit nudge targets, bounds offsets), and the
// history cache consulted when focus moves into or out of the region.
//
// Regions must not be nested: AttachTo rejects a parent that already
// sits inside another region.
type Region struct {
	container *Element
	window    *Window
	id        string

	defaultFocus            *Element
	defaultOverridesHistory bool
	clearHistoryOnRotate    bool

	shortcutTarget *Element
	shortcutDir    Direction

	// nudgeTargets maps a direction to the ID of the region an outgoing
	// nudge should land in. IDs resolve lazily against the window
	// registry at nudge time, so targets may attach and detach freely.
	nudgeTargets map[Direction]string

	// Layout-relative bounds offsets; explicitOffset pins absolute
	// values that bypass RTL mirroring.
	startOffset    int
	endOffset      int
	topOffset      int
	bottomOffset   int
	explicitOffset *Edges

	wrapAround bool

	cache *Cache
	clock clockwork.Clock

	hasFocus    bool
	unsubscribe func()
}

// RegionOption configures a Region.
type RegionOption func(*Region)

// WithRegionID sets the region's identifier. Regions with IDs can be the
// target of other regions' nudge overrides and are looked up through the
// window registry. IDs must be unique within a window.
func WithRegionID(id string) RegionOption {
	return func(r *Region) {
		r.id = id
	}
}

// WithDefaultFocus declares the element that represents this region's
// natural entry point. It must be a descendant of the region by attach
// time.
func WithDefaultFocus(el *Element) RegionOption {
	return func(r *Region) {
		r.defaultFocus = el
	}
}

// WithDefaultFocusOverridesHistory makes the default-focus element win
// over the history cache when focus moves into the region.
func WithDefaultFocusOverridesHistory() RegionOption {
	return func(r *Region) {
		r.defaultOverridesHistory = true
	}
}

// WithClearHistoryOnRotate clears the region's cross-region history
// whenever the user rotates between elements inside the region.
func WithClearHistoryOnRotate() RegionOption {
	return func(r *Region) {
		r.clearHistoryOnRotate = true
	}
}

// WithShortcut routes nudges in the given direction straight to target,
// bypassing cross-region navigation. A second nudge in the same
// direction from the target falls through to normal navigation.
func WithShortcut(target *Element, dir Direction) RegionOption {
	return func(r *Region) {
		r.shortcutTarget = target
		r.shortcutDir = dir
	}
}

// WithNudgeTarget pins the region a nudge in the given direction should
// land in, overriding spatial search and history.
func WithNudgeTarget(dir Direction, regionID string) RegionOption {
	return func(r *Region) {
		r.nudgeTargets[dir] = regionID
	}
}

// WithBoundsOffset sets layout-relative edge offsets (start, end, top,
// bottom) applied to the container's bounds during spatial searches.
// Start and end resolve to left and right under LTR and mirror under
// RTL. Positive values grow the region's effective bounds.
func WithBoundsOffset(start, end, top, bottom int) RegionOption {
	return func(r *Region) {
		r.startOffset = start
		r.endOffset = end
		r.topOffset = top
		r.bottomOffset = bottom
	}
}

// WithWrapAround makes rotation inside the region wrap from the last
// focusable element back to the first and vice versa.
func WithWrapAround() RegionOption {
	return func(r *Region) {
		r.wrapAround = true
	}
}

// WithCache replaces the region's history cache. Useful for sharing a
// profile-built cache configuration or disabling history entirely.
func WithCache(c *Cache) RegionOption {
	return func(r *Region) {
		r.cache = c
	}
}

// WithClock replaces the clock used to stamp and expire history entries.
func WithClock(c clockwork.Clock) RegionOption {
	return func(r *Region) {
		r.clock = c
	}
}

// NewRegion creates a Region with the given options. The region owns a
// fresh container element; populate it with AddChild and hook it into
// the tree with AttachTo.
func NewRegion(opts ...RegionOption) *Region {
	r := &Region{
		container:    NewElement(),
		nudgeTargets: make(map[Direction]string),
		cache:        MustNewCache(PolicyExpireAfter, defaultHistoryTTL, PolicyExpireAfter, defaultHistoryTTL),
		clock:        clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AttachTo hooks the region's container into the tree under parent and
// registers the region with the parent's window. Configuration is
// validated here, failing fast on author mistakes: a half-configured
// shortcut, a default-focus element outside the region, nesting inside
// another region, or a duplicate region ID.
func (r *Region) AttachTo(parent *Element) error {
	if parent == nil {
		return fmt.Errorf("cannot attach region %q to a nil parent", r.id)
	}
	if r.window != nil {
		return fmt.Errorf("region %q is already attached", r.id)
	}
	w := parent.window
	if w == nil {
		return fmt.Errorf("cannot attach region %q: parent is not attached to a window", r.id)
	}

	if err := r.validate(); err != nil {
		return err
	}
	for p := parent; p != nil; p = p.parent {
		if p.regionOwner != nil {
			return fmt.Errorf("region %q cannot be nested inside region %q", r.id, p.regionOwner.id)
		}
	}
	if err := w.registerRegion(r); err != nil {
		return err
	}

	r.window = w
	r.container.regionOwner = r
	parent.AddChild(r.container)
	r.unsubscribe = w.focusBus.Subscribe(r.onFocusChange)
	r.hasFocus = r.contains(w.Focused())
	return nil
}

// validate checks the author-supplied configuration.
func (r *Region) validate() error {
	if r.shortcutTarget != nil && !r.shortcutDir.IsValid() {
		return fmt.Errorf("region %q: shortcut target configured without a direction", r.id)
	}
	if r.shortcutTarget == nil && r.shortcutDir != DirectionNone {
		return fmt.Errorf("region %q: shortcut direction configured without a target", r.id)
	}
	if r.defaultFocus != nil && !r.defaultFocus.isDescendantOf(r.container) {
		return fmt.Errorf("region %q: default focus element is not a descendant of the region", r.id)
	}
	for dir := range r.nudgeTargets {
		if !dir.IsValid() {
			return fmt.Errorf("region %q: nudge target configured for invalid direction %d", r.id, dir)
		}
	}
	return nil
}

// Detach removes the region's container from the tree and unregisters
// the region from its window. Focus held inside the region is released
// and restored through the sink. Detaching an unattached region is a
// no-op.
func (r *Region) Detach() {
	if r.window == nil {
		return
	}
	if p := r.container.parent; p != nil {
		p.RemoveChild(r.container)
		return
	}
	r.containerDetached()
}

// containerDetached unhooks the region when its container leaves the
// tree, whether through Detach or through a plain RemoveChild higher up.
func (r *Region) containerDetached() {
	w := r.window
	if w == nil {
		return
	}
	w.unregisterRegion(r)
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.window = nil
	r.container.regionOwner = nil
	r.hasFocus = false
}

// ID returns the region's identifier, or "" if none was set.
func (r *Region) ID() string {
	return r.id
}

// Container returns the region's container element.
func (r *Region) Container() *Element {
	return r.container
}

// AddChild appends children to the region's container.
func (r *Region) AddChild(children ...*Element) {
	r.container.AddChild(children...)
}

// Attached returns whether the region is currently attached to a window.
func (r *Region) Attached() bool {
	return r.window != nil
}

// HasFocus returns whether the focused element is inside this region.
func (r *Region) HasFocus() bool {
	return r.hasFocus
}

// SetCache swaps the region's history cache at runtime.
func (r *Region) SetCache(c *Cache) {
	r.cache = c
}

// SetDefaultFocusOverridesHistory flips the resolution order between the
// default-focus element and the history cache.
func (r *Region) SetDefaultFocusOverridesHistory(overrides bool) {
	r.defaultOverridesHistory = overrides
}

// SetClearHistoryOnRotate toggles clearing cross-region history on
// internal rotation.
func (r *Region) SetClearHistoryOnRotate(clear bool) {
	r.clearHistoryOnRotate = clear
}

// contains reports whether el lives inside this region.
func (r *Region) contains(el *Element) bool {
	return el != nil && el.Region() == r
}
