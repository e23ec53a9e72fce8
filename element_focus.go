package dial

// --- Focus API ---

// IsFocusable returns whether this element can receive focus.
func (e *Element) IsFocusable() bool {
	return e.focusable
}

// IsFocused returns whether this element currently holds its window's focus.
func (e *Element) IsFocused() bool {
	return e.focused
}

// IsEnabled returns whether this element is enabled.
func (e *Element) IsEnabled() bool {
	return e.enabled
}

// IsShown returns whether this element and all of its ancestors are shown.
func (e *Element) IsShown() bool {
	for p := e; p != nil; p = p.parent {
		if !p.shown {
			return false
		}
	}
	return true
}

// IsScrollable returns whether this element is a scrollable container.
func (e *Element) IsScrollable() bool {
	return e.scrollable
}

// SetFocusable sets whether this element can receive focus.
// Making the focused element unfocusable releases its focus.
func (e *Element) SetFocusable(focusable bool) {
	e.focusable = focusable
	e.releaseFocusIfInvalid()
}

// SetEnabled enables or disables this element. Enabled state is not
// inherited: disabling a container does not disable its descendants.
// Disabling the focused element releases its focus.
func (e *Element) SetEnabled(enabled bool) {
	e.enabled = enabled
	e.releaseFocusIfInvalid()
}

// SetShown shows or hides this element. Hiding an element hides its
// whole subtree; if the focused element was inside it, focus is released.
func (e *Element) SetShown(shown bool) {
	e.shown = shown
	e.releaseFocusIfInvalid()
}

// SetScrollable marks or unmarks the element as a scrollable container.
func (e *Element) SetScrollable(scrollable bool) {
	e.scrollable = scrollable
}

// SetOnFocus sets a handler called when this element gains focus.
// The handler receives the element as its first parameter.
// Implicitly sets focusable = true.
func (e *Element) SetOnFocus(fn func(*Element)) {
	e.focusable = true
	e.onFocus = fn
}

// SetOnBlur sets a handler called when this element loses focus.
// The handler receives the element as its first parameter.
// Implicitly sets focusable = true.
func (e *Element) SetOnBlur(fn func(*Element)) {
	e.focusable = true
	e.onBlur = fn
}

// SetOnSelect sets a handler called when the controller's center button
// is pressed while this element is focused.
// Implicitly sets focusable = true.
func (e *Element) SetOnSelect(fn func(*Element)) {
	e.focusable = true
	e.onSelect = fn
}

// CanTakeFocus reports whether a focus transfer to this element would
// succeed right now: it must be attached to a window, focusable, enabled,
// shown, and have non-empty bounds. The window's sink is exempt from the
// bounds rule. Every consumer of a cached element reference calls this
// before trusting the reference.
func (e *Element) CanTakeFocus() bool {
	if e.window == nil || !e.focusable || !e.enabled {
		return false
	}
	if !e.IsShown() {
		return false
	}
	if e.bounds.IsEmpty() && !e.sink {
		return false
	}
	return true
}

// Region returns the region whose container holds this element, or nil
// if the element is outside every region. Membership is computed by
// walking ancestors, so it stays correct as the tree changes.
func (e *Element) Region() *Region {
	for p := e; p != nil; p = p.parent {
		if p.regionOwner != nil {
			return p.regionOwner
		}
	}
	return nil
}

// firstFocusableDescendant returns the first element in tree order under
// e (inclusive) that can take focus, skipping the sink. Returns nil if
// there is none.
func (e *Element) firstFocusableDescendant() *Element {
	if !e.sink && e.CanTakeFocus() {
		return e
	}
	for _, child := range e.children {
		if found := child.firstFocusableDescendant(); found != nil {
			return found
		}
	}
	return nil
}

// scrollableAncestor returns the nearest scrollable ancestor of e, or
// nil if there is none.
func (e *Element) scrollableAncestor() *Element {
	for p := e.parent; p != nil; p = p.parent {
		if p.scrollable {
			return p
		}
	}
	return nil
}

// releaseFocusIfInvalid hands focus back to the window when the focused
// element can no longer hold it (hidden, disabled, unfocusable, or
// zero-sized after a layout pass).
func (e *Element) releaseFocusIfInvalid() {
	w := e.window
	if w == nil {
		return
	}
	f := w.focused
	if f == nil || f.CanTakeFocus() {
		return
	}
	w.releaseFocus()
	w.sink.restoreFocusInRoot()
}
