package dial

// Element is a node in the navigation tree. It mirrors a widget owned by
// the host toolkit: the host keeps rendering and layout, the engine keeps
// identity, geometry, and focus state.
type Element struct {
	// Tree structure
	children []*Element
	parent   *Element

	// Identity and geometry. Bounds are window coordinates, pushed in by
	// the host whenever its layout pass runs.
	id     string
	bounds Rect

	// Focus properties
	focusable bool
	enabled   bool
	shown     bool
	focused   bool

	// Scrollable containers can reclaim focus when a descendant vanishes
	// off-screen, so continued rotation scrolls it back into view.
	scrollable bool

	// sink marks the window's focus sink. The sink stays focusable with
	// empty bounds so focus can always park on it.
	sink bool

	onFocus  func(*Element)
	onBlur   func(*Element)
	onSelect func(*Element)

	// Backpointers. window is set while the element is attached under a
	// window root. regionOwner is set only on a region's container element.
	window      *Window
	regionOwner *Region
}

// NewElement creates a new Element with the given options.
// By default an element is enabled and shown but not focusable.
func NewElement(opts ...ElementOption) *Element {
	e := &Element{
		enabled: true,
		shown:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's identifier, or "" if none was set.
func (e *Element) ID() string {
	return e.id
}

// Bounds returns the element's bounds in window coordinates.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// SetBounds updates the element's bounds in window coordinates.
// Hosts call this whenever their layout pass moves or resizes the widget.
// Shrinking a focused element to nothing releases its focus.
func (e *Element) SetBounds(r Rect) {
	e.bounds = r
	e.releaseFocusIfInvalid()
}

// Window returns the window this element is attached to, or nil.
func (e *Element) Window() *Window {
	return e.window
}
