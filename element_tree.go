package dial

// --- Tree API ---

// AddChild appends children to this Element and attaches their subtrees
// to this element's window, if any. Child order is tree order: it decides
// rotation order and first-focusable searches, so callers should add
// children in the order they are laid out.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		child.setWindowRecursive(e.window)
		e.children = append(e.children, child)
	}
}

// RemoveChild removes a child from this Element.
// Returns true if the child was found and removed.
// If the focused element was inside the removed subtree, focus is
// released before the subtree is severed (so listeners still see the old
// tree) and then restored through the window's sink.
func (e *Element) RemoveChild(child *Element) bool {
	idx := -1
	for i, c := range e.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	w := child.window
	released := false
	if w != nil {
		released = w.releaseFocusIn(child)
	}

	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.parent = nil
	child.setWindowRecursive(nil)

	if released {
		w.sink.restoreFocusInRoot()
	}
	return true
}

// RemoveAllChildren removes every child from this Element, releasing and
// restoring focus the same way RemoveChild does.
func (e *Element) RemoveAllChildren() {
	if len(e.children) == 0 {
		return
	}

	w := e.window
	released := false
	if w != nil {
		for _, child := range e.children {
			if w.releaseFocusIn(child) {
				released = true
				break
			}
		}
	}

	for _, child := range e.children {
		child.parent = nil
		child.setWindowRecursive(nil)
	}
	e.children = nil

	if released {
		w.sink.restoreFocusInRoot()
	}
}

// Children returns the child elements in tree order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// isDescendantOf reports whether e is target itself or inside its subtree.
func (e *Element) isDescendantOf(target *Element) bool {
	for p := e; p != nil; p = p.parent {
		if p == target {
			return true
		}
	}
	return false
}

// setWindowRecursive updates the window backpointer for the whole
// subtree. Detaching (w == nil) also tears down any regions whose
// containers live inside the subtree.
func (e *Element) setWindowRecursive(w *Window) {
	e.window = w
	if w == nil && e.regionOwner != nil {
		e.regionOwner.containerDetached()
	}
	for _, child := range e.children {
		child.setWindowRecursive(w)
	}
}
