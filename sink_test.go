package dial

import (
	"testing"
)

func TestSink_ParkOnEmptyWindow(t *testing.T) {
	w := MustNewWindow()

	if !w.Sink().RestoreFocus(false) {
		t.Fatal("RestoreFocus should always succeed outside touch mode")
	}
	if !w.Sink().IsFocused() {
		t.Error("with nothing to focus, focus should park on the sink")
	}
}

func TestSink_RestoreRefusesInTouchMode(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)
	w.SetTouchMode(true)

	if w.Sink().RestoreFocus(true) {
		t.Error("RestoreFocus(true) should refuse while in touch mode")
	}
	if w.Focused() != nil {
		t.Error("a refused restore should not move focus")
	}

	if !w.Sink().RestoreFocus(false) {
		t.Error("RestoreFocus(false) should ignore touch mode")
	}
	if w.Focused() != el {
		t.Error("the unchecked restore should land on the focusable element")
	}
}

func TestSink_RestorePrefersRegionsOverLooseElements(t *testing.T) {
	w := MustNewWindow()

	// The loose element comes first in tree order, but regions get the
	// first claim during restoration.
	loose := NewElement(WithID("loose"), WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(loose)

	r := NewRegion()
	inRegion := NewElement(WithID("in-region"), WithFocusable(true), WithBounds(NewRect(0, 20, 10, 10)))
	r.AddChild(inRegion)
	if err := r.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}

	w.Sink().RestoreFocus(false)

	if w.Focused() != inRegion {
		t.Errorf("restoration should let the region resolve first, got %v", elementID(w.Focused()))
	}
}

func TestSink_RestoreUsesRegionTreeOrder(t *testing.T) {
	w := MustNewWindow()
	second := NewRegion(WithRegionID("second"))
	second.AddChild(NewElement(WithID("s0"), WithFocusable(true), WithBounds(NewRect(0, 20, 10, 10))))
	first := NewRegion(WithRegionID("first"))
	first.AddChild(NewElement(WithID("f0"), WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10))))

	// Attach order decides tree order.
	if err := first.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}
	if err := second.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}

	w.Sink().RestoreFocus(false)

	if !first.HasFocus() {
		t.Error("the first region in tree order should claim restoration")
	}
}

func TestSink_RestoreSkipsEmptyRegion(t *testing.T) {
	w := MustNewWindow()
	empty := NewRegion(WithRegionID("empty"))
	if err := empty.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}
	full := NewRegion(WithRegionID("full"))
	full.AddChild(NewElement(WithID("f0"), WithFocusable(true), WithBounds(NewRect(0, 20, 10, 10))))
	if err := full.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}

	w.Sink().RestoreFocus(false)

	if !full.HasFocus() {
		t.Error("restoration should move past a region with nothing to focus")
	}
}

func TestSink_RestoreFallsBackToLooseElement(t *testing.T) {
	w := MustNewWindow()
	empty := NewRegion()
	if err := empty.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}
	loose := NewElement(WithID("loose"), WithFocusable(true), WithBounds(NewRect(0, 20, 10, 10)))
	w.Root().AddChild(loose)

	w.Sink().RestoreFocus(false)

	if w.Focused() != loose {
		t.Errorf("with no region able to take focus, the first loose element should, got %v",
			elementID(w.Focused()))
	}
}

// scrollableFixture builds a window with a loose element first in tree
// order followed by a scrollable list holding one focused row. The loose
// element is what the ordinary search would pick, so tests can tell the
// rescue path apart from it.
func scrollableFixture(t *testing.T) (*Window, *Element, *Element, *Element) {
	t.Helper()
	w := MustNewWindow()
	other := NewElement(WithID("other"), WithFocusable(true), WithBounds(NewRect(30, 0, 10, 10)))
	w.Root().AddChild(other)
	list := NewElement(WithID("list"), WithScrollable(), WithBounds(NewRect(0, 0, 20, 40)))
	row := NewElement(WithID("row"), WithFocusable(true), WithBounds(NewRect(0, 0, 20, 10)))
	list.AddChild(row)
	w.Root().AddChild(list)
	if !w.Focus(row) {
		t.Fatal("setup: could not focus the row")
	}
	return w, other, list, row
}

func TestSink_ScrollableRescue(t *testing.T) {
	w, _, list, row := scrollableFixture(t)

	// The row scrolls out of the viewport and the host drops it. The
	// container is rescued even though another element comes first in
	// tree order.
	list.RemoveChild(row)

	if w.Focused() != list {
		t.Errorf("the scrollable container should rescue focus, got %v", elementID(w.Focused()))
	}
}

func TestSink_NoRescueWhileElementAttached(t *testing.T) {
	w, other, list, row := scrollableFixture(t)

	// Hidden but still attached: the rescue is only for elements that
	// left the tree, so the ordinary search runs instead.
	row.SetShown(false)

	if w.Focused() == list {
		t.Error("the container should not hijack focus while the element is still attached")
	}
	if w.Focused() != other {
		t.Errorf("the ordinary search should run, got %v", elementID(w.Focused()))
	}
}

func TestSink_RescueSkipsHiddenContainer(t *testing.T) {
	w := MustNewWindow()
	list := NewElement(WithID("list"), WithScrollable(), WithBounds(NewRect(0, 0, 20, 40)))
	row := NewElement(WithID("row"), WithFocusable(true), WithBounds(NewRect(0, 0, 20, 10)))
	list.AddChild(row)
	w.Root().AddChild(list)
	if !w.Focus(row) {
		t.Fatal("setup: could not focus the row")
	}

	// Hiding the list parks focus; the row then leaves the tree while
	// the window shows nothing, as when a whole pane collapses.
	list.SetShown(false)
	list.RemoveChild(row)
	w.Sink().RestoreFocus(false)

	if w.Focused() == list {
		t.Error("a hidden container should not be rescued into focus")
	}
	if !w.Sink().IsFocused() {
		t.Error("with nothing else available, focus should stay parked")
	}
}

func TestSink_ParkIsTerminal(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)
	w.Focus(el)

	// Every possible target disappears; the chain must still succeed.
	el.SetEnabled(false)

	if !w.Sink().IsFocused() {
		t.Fatal("focus should park on the sink when nothing else can take it")
	}

	if !w.Sink().RestoreFocus(false) {
		t.Error("restoring with focus already parked should still succeed")
	}
	if !w.Sink().IsFocused() {
		t.Error("focus should stay parked")
	}
}

func TestSink_Park(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)
	w.Focus(el)

	if !w.Sink().Park() {
		t.Fatal("Park should take focus away from the element")
	}
	if !w.Sink().IsFocused() {
		t.Error("Park should leave the sink focused")
	}

	if w.Sink().Park() {
		t.Error("parking while already parked should report false")
	}
}

func TestSink_RequestFocusRedirectsToRestore(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithID("el"), WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)

	if !w.Sink().RequestFocus() {
		t.Fatal("RequestFocus should succeed")
	}
	if w.Sink().IsFocused() {
		t.Error("RequestFocus should restore a real element instead of focusing the sink")
	}
	if w.Focused() != el {
		t.Errorf("focus should land on the focusable element, got %v", elementID(w.Focused()))
	}
}

func TestSink_RequestFocusDirectWhenRestoreDisabled(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)

	w.Sink().SetRestoreEnabled(false)

	if !w.Sink().RequestFocus() {
		t.Fatal("RequestFocus should succeed")
	}
	if !w.Sink().IsFocused() {
		t.Error("with restore disabled, RequestFocus should focus the sink itself")
	}
}

func TestSink_RestoreDefaultFocus(t *testing.T) {
	w := MustNewWindow()
	el := NewElement(WithID("el"), WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10)))
	w.Root().AddChild(el)

	if !w.Sink().RestoreDefaultFocus() {
		t.Fatal("RestoreDefaultFocus should succeed")
	}
	if w.Focused() != el {
		t.Errorf("RestoreDefaultFocus should land on the focusable element, got %v", elementID(w.Focused()))
	}

	w.Sink().SetRestoreEnabled(false)
	if !w.Sink().RestoreDefaultFocus() {
		t.Fatal("RestoreDefaultFocus should succeed with restore disabled")
	}
	if !w.Sink().IsFocused() {
		t.Error("with restore disabled, RestoreDefaultFocus should focus the sink itself")
	}
}

func TestSink_WindowFocusLostForgetsRemembered(t *testing.T) {
	w, other, _, row := scrollableFixture(t)

	w.SetWindowFocused(false)

	// The row vanishes while the window is in the background. Because
	// parking forgot the remembered element, regaining focus must run
	// the ordinary search instead of rescuing the stale container.
	row.Parent().RemoveChild(row)
	w.SetWindowFocused(true)

	if w.Focused() != other {
		t.Errorf("restoration should run the ordinary chain, got %v", elementID(w.Focused()))
	}
}

func TestSink_RestoreAfterRegionFocusReturns(t *testing.T) {
	w := MustNewWindow()
	r := NewRegion()
	els := []*Element{
		NewElement(WithID("r0"), WithFocusable(true), WithBounds(NewRect(0, 0, 10, 10))),
		NewElement(WithID("r1"), WithFocusable(true), WithBounds(NewRect(12, 0, 10, 10))),
	}
	r.AddChild(els...)
	if err := r.AttachTo(w.Root()); err != nil {
		t.Fatal(err)
	}
	w.Focus(els[1])

	w.SetWindowFocused(false)
	w.SetWindowFocused(true)

	if w.Focused() != els[1] {
		t.Errorf("the region's history should bring focus back after a background trip, got %v",
			elementID(w.Focused()))
	}
}
