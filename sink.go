package dial

import "github.com/grindlemire/go-dial/internal/debug"

// Sink is the per-window focus fallback. It guarantees some element in
// the window always holds focus: when the focused element disappears
// (removed, disabled, hidden, scrolled away) the sink restores focus to
// a sane target, and when nothing at all can take focus it parks focus
// on its own sentinel element. Parking also keeps a backgrounded window
// from appearing focused alongside the foreground one.
//
// Every window creates its sink itself; there is exactly one per window.
type Sink struct {
	window *Window
	el     *Element

	// remembered is the last non-sink element that held focus, and
	// rememberedScrollable its nearest scrollable container at that
	// time. Both are non-owning references, re-validated before use.
	remembered           *Element
	rememberedScrollable *Element

	restoreEnabled bool
}

// newSink builds the sink's sentinel element as the first child of the
// window root and subscribes to the focus-changed bus.
func newSink(w *Window) *Sink {
	s := &Sink{
		window:         w,
		restoreEnabled: true,
	}
	s.el = NewElement(WithID("focus-sink"), WithFocusable(true))
	s.el.sink = true
	w.root.AddChild(s.el)
	w.focusBus.Subscribe(s.onFocusChange)
	return s
}

// Element returns the sink's sentinel element.
func (s *Sink) Element() *Element {
	return s.el
}

// IsFocused returns whether focus is currently parked on the sink.
func (s *Sink) IsFocused() bool {
	return s.el.focused
}

// SetRestoreEnabled controls whether RequestFocus and
// RestoreDefaultFocus redirect into focus restoration. Disabling it is
// the escape hatch for embedded sub-windows that must be allowed to
// visibly park focus. Default is enabled.
func (s *Sink) SetRestoreEnabled(enabled bool) {
	s.restoreEnabled = enabled
}

// RestoreFocus moves focus to the best available target. With
// checkTouchMode set it refuses to move focus while the window is in
// touch-input mode. It only returns false for that touch-mode refusal;
// otherwise the chain ends on the sink itself and always succeeds.
func (s *Sink) RestoreFocus(checkTouchMode bool) bool {
	if checkTouchMode && s.window.IsTouchMode() {
		debug.Log("Sink.RestoreFocus: skipped, window in touch mode")
		return false
	}
	return s.restoreFocusInRoot()
}

// restoreFocusInRoot runs the restoration chain: rescue the remembered
// element's scrollable container, then search the whole window, then
// park on the sink.
func (s *Sink) restoreFocusInRoot() bool {
	if s.focusScrollableAncestor() {
		return true
	}
	if s.focusAnywhere() {
		return true
	}
	debug.Log("Sink.restoreFocusInRoot: parking focus")
	return s.window.Focus(s.el)
}

// focusScrollableAncestor focuses the remembered element's scrollable
// container when the element itself has been detached but the container
// survives. Continued rotation can then scroll the element back
// on-screen.
func (s *Sink) focusScrollableAncestor() bool {
	if s.remembered == nil || s.remembered.window == s.window {
		return false
	}
	container := s.rememberedScrollable
	if container == nil || container.window != s.window || !container.IsShown() {
		return false
	}
	debug.Log("Sink.focusScrollableAncestor: %q", container.id)
	return s.window.Focus(container)
}

// focusAnywhere walks the tree in order, letting each region run its own
// resolution (default focus, history, first focusable); if no region
// takes focus it falls back to the first focusable element outside every
// region.
func (s *Sink) focusAnywhere() bool {
	var fallback *Element
	var walk func(e *Element) bool
	walk = func(e *Element) bool {
		if r := e.regionOwner; r != nil {
			return r.Focus(DirectionNone)
		}
		if fallback == nil && !e.sink && e.CanTakeFocus() {
			fallback = e
		}
		for _, child := range e.children {
			if walk(child) {
				return true
			}
		}
		return false
	}
	if walk(s.window.root) {
		return true
	}
	return fallback != nil && s.window.Focus(fallback)
}

// RequestFocus asks the sink to take focus. Unless restore is disabled
// it redirects into the restoration chain so the sink only visibly holds
// focus as a last resort.
func (s *Sink) RequestFocus() bool {
	if !s.restoreEnabled {
		return s.window.Focus(s.el)
	}
	return s.restoreFocusInRoot()
}

// RestoreDefaultFocus mirrors RequestFocus for hosts whose toolkit
// routes a "restore default focus" call at the window level.
func (s *Sink) RestoreDefaultFocus() bool {
	if !s.restoreEnabled {
		return s.window.Focus(s.el)
	}
	return s.restoreFocusInRoot()
}

// Park moves focus directly onto the sink, bypassing restoration.
// It reports whether focus moved; parking while already parked returns
// false.
func (s *Sink) Park() bool {
	if s.el.focused {
		return false
	}
	return s.window.Focus(s.el)
}

// windowFocusLost parks focus unconditionally and forgets the
// remembered element; it will be recomputed from the next live focus
// change.
func (s *Sink) windowFocusLost() {
	debug.Log("Sink.windowFocusLost: parking focus")
	s.remembered = nil
	s.rememberedScrollable = nil
	s.window.Focus(s.el)
}

// windowFocusGained restores focus if it is still parked here, keeping
// out of the way when the host already focused something.
func (s *Sink) windowFocusGained() {
	if s.el.focused {
		s.RestoreFocus(true)
	}
}

// onFocusChange tracks the last non-sink focus holder and its scrollable
// container for later restoration.
func (s *Sink) onFocusChange(ev FocusEvent) {
	if ev.Next == nil || ev.Next.sink {
		return
	}
	s.remembered = ev.Next
	s.rememberedScrollable = ev.Next.scrollableAncestor()
}
