package dial

import (
	"fmt"

	"github.com/grindlemire/go-dial/internal/debug"
)

// LayoutDirection selects how layout-relative values (region bounds
// offsets) resolve to left/right.
type LayoutDirection uint8

const (
	// LayoutLTR resolves start to left and end to right (default).
	LayoutLTR LayoutDirection = iota
	// LayoutRTL resolves start to right and end to left.
	LayoutRTL
)

// FocusEvent describes a completed focus transfer. It is delivered
// strictly after the transfer has taken effect, so listeners always
// observe the new state.
type FocusEvent struct {
	// Prev is the element that lost focus, or nil if nothing held it.
	Prev *Element
	// Next is the element that gained focus, or nil when focus was
	// released with no successor (the element vanished; a restore through
	// the sink follows as a separate event).
	Next *Element
}

// Window owns one navigation tree: the root element, the focused
// element, the region registry, the focus sink, and the focus-changed
// notification bus. All operations are synchronous; a window must only
// be used from the host's UI goroutine.
type Window struct {
	root    *Element
	sink    *Sink
	focused *Element

	focusBus *Events[FocusEvent]

	// regionIDs indexes attached regions with a non-empty ID.
	regionIDs map[string]*Region

	layoutDir     LayoutDirection
	touchMode     bool
	windowFocused bool
}

// WindowOption is a functional option for configuring a Window.
type WindowOption func(*Window) error

// WithLayoutDirection sets the window's layout direction.
// Default is LayoutLTR.
func WithLayoutDirection(dir LayoutDirection) WindowOption {
	return func(w *Window) error {
		if dir != LayoutLTR && dir != LayoutRTL {
			return fmt.Errorf("unknown layout direction %d", dir)
		}
		w.layoutDir = dir
		return nil
	}
}

// NewWindow creates a Window with an empty root element and its focus
// sink already in place. The window starts window-focused and out of
// touch mode.
func NewWindow(opts ...WindowOption) (*Window, error) {
	w := &Window{
		focusBus:      NewEvents[FocusEvent](),
		regionIDs:     make(map[string]*Region),
		windowFocused: true,
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	w.root = NewElement()
	w.root.window = w
	w.sink = newSink(w)
	return w, nil
}

// MustNewWindow creates a Window and panics on error.
func MustNewWindow(opts ...WindowOption) *Window {
	w, err := NewWindow(opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Root returns the window's root element. Hosts build their tree under it.
func (w *Window) Root() *Element {
	return w.root
}

// Sink returns the window's focus sink.
func (w *Window) Sink() *Sink {
	return w.sink
}

// Focused returns the element currently holding focus, or nil.
func (w *Window) Focused() *Element {
	return w.focused
}

// LayoutDirection returns the window's layout direction.
func (w *Window) LayoutDirection() LayoutDirection {
	return w.layoutDir
}

// Focus transfers focus to el. It returns false if el is not attached to
// this window or cannot take focus, and true otherwise. Focusing the
// element that already holds focus is a successful no-op and fires no
// notification. On a real transfer the previous element's blur hook and
// the new element's focus hook run first, then the focus-changed bus
// fires.
func (w *Window) Focus(el *Element) bool {
	if el == nil || el.window != w {
		return false
	}
	if !el.CanTakeFocus() {
		debug.Log("Window.Focus: %q cannot take focus", el.id)
		return false
	}
	if w.focused == el {
		return true
	}

	prev := w.focused
	w.focused = el
	if prev != nil {
		prev.focused = false
		if prev.onBlur != nil {
			prev.onBlur(prev)
		}
	}
	el.focused = true
	if el.onFocus != nil {
		el.onFocus(el)
	}

	debug.Log("Window.Focus: %q -> %q", elementID(prev), el.id)
	w.focusBus.Emit(FocusEvent{Prev: prev, Next: el})
	return true
}

// OnFocusChange subscribes fn to the window's focus-changed bus and
// returns a function that unsubscribes it.
func (w *Window) OnFocusChange(fn func(FocusEvent)) func() {
	return w.focusBus.Subscribe(fn)
}

// --- Touch mode and window focus ---

// IsTouchMode returns whether the window is in touch-input mode. The
// engine does not navigate while the user is touching the screen.
func (w *Window) IsTouchMode() bool {
	return w.touchMode
}

// SetTouchMode switches touch-input mode. Hosts set it on pointer input;
// the controller clears it on the next rotary input.
func (w *Window) SetTouchMode(touch bool) {
	w.touchMode = touch
}

// IsWindowFocused returns whether the window itself has the host's focus.
func (w *Window) IsWindowFocused() bool {
	return w.windowFocused
}

// SetWindowFocused tells the engine the window gained or lost the host's
// focus. Losing it parks focus on the sink so two windows never appear
// focused at once; regaining it while parked restores focus.
func (w *Window) SetWindowFocused(focused bool) {
	if w.windowFocused == focused {
		return
	}
	w.windowFocused = focused
	if focused {
		w.sink.windowFocusGained()
	} else {
		w.sink.windowFocusLost()
	}
}

// --- Region registry ---

// Region returns the attached region with the given ID, or nil.
func (w *Window) Region(id string) *Region {
	if id == "" {
		return nil
	}
	return w.regionIDs[id]
}

// Regions returns the attached regions in tree order.
func (w *Window) Regions() []*Region {
	var ordered []*Region
	var walk func(e *Element)
	walk = func(e *Element) {
		if e.regionOwner != nil {
			ordered = append(ordered, e.regionOwner)
			return
		}
		for _, child := range e.children {
			walk(child)
		}
	}
	walk(w.root)
	return ordered
}

func (w *Window) registerRegion(r *Region) error {
	if r.id == "" {
		return nil
	}
	if _, exists := w.regionIDs[r.id]; exists {
		return fmt.Errorf("a region with ID %q is already attached", r.id)
	}
	w.regionIDs[r.id] = r
	return nil
}

func (w *Window) unregisterRegion(r *Region) {
	if r.id != "" && w.regionIDs[r.id] == r {
		delete(w.regionIDs, r.id)
	}
}

// --- Internal focus release ---

// releaseFocus blurs the focused element and leaves the window with no
// focus holder. The loss notification fires with a nil Next; callers
// restore focus through the sink afterwards.
func (w *Window) releaseFocus() {
	prev := w.focused
	if prev == nil {
		return
	}
	w.focused = nil
	prev.focused = false
	if prev.onBlur != nil {
		prev.onBlur(prev)
	}
	debug.Log("Window.releaseFocus: %q", prev.id)
	w.focusBus.Emit(FocusEvent{Prev: prev, Next: nil})
}

// releaseFocusIn releases focus if the focused element sits inside the
// given subtree. It reports whether a release happened. Called before a
// subtree is severed so listeners still see it attached.
func (w *Window) releaseFocusIn(subtree *Element) bool {
	if w.focused == nil || !w.focused.isDescendantOf(subtree) {
		return false
	}
	w.releaseFocus()
	return true
}

func elementID(e *Element) string {
	if e == nil {
		return "<none>"
	}
	return e.id
}
