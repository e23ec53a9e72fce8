package dial

// ElementOption configures an Element.
type ElementOption func(*Element)

// --- Identity Options ---

// WithID sets a stable identifier for the element. IDs are used for
// debug logging and for resolving references in navigation profiles.
func WithID(id string) ElementOption {
	return func(e *Element) {
		e.id = id
	}
}

// WithBounds sets the element's bounds in window coordinates.
func WithBounds(r Rect) ElementOption {
	return func(e *Element) {
		e.bounds = r
	}
}

// --- Focus Options ---

// WithFocusable sets whether this element can receive focus.
func WithFocusable(focusable bool) ElementOption {
	return func(e *Element) {
		e.focusable = focusable
	}
}

// WithDisabled starts the element disabled. Disabled elements are
// skipped by every focus search until re-enabled.
func WithDisabled() ElementOption {
	return func(e *Element) {
		e.enabled = false
	}
}

// WithHidden starts the element hidden. A hidden element hides its
// whole subtree from focus searches.
func WithHidden() ElementOption {
	return func(e *Element) {
		e.shown = false
	}
}

// WithOnFocus sets the callback for when this element gains focus.
// Implicitly sets focusable = true.
func WithOnFocus(fn func(*Element)) ElementOption {
	return func(e *Element) {
		e.focusable = true
		e.onFocus = fn
	}
}

// WithOnBlur sets the callback for when this element loses focus.
// Implicitly sets focusable = true.
func WithOnBlur(fn func(*Element)) ElementOption {
	return func(e *Element) {
		e.focusable = true
		e.onBlur = fn
	}
}

// WithOnSelect sets the callback for when the controller's center
// button is pressed while this element is focused.
// Implicitly sets focusable = true.
func WithOnSelect(fn func(*Element)) ElementOption {
	return func(e *Element) {
		e.focusable = true
		e.onSelect = fn
	}
}

// --- Scroll Options ---

// WithScrollable marks the element as a scrollable container.
// Implicitly sets focusable = true so the container itself can hold
// focus when its visible descendants disappear.
func WithScrollable() ElementOption {
	return func(e *Element) {
		e.scrollable = true
		e.focusable = true
	}
}
