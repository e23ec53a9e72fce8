package dial

import "github.com/grindlemire/go-dial/internal/debug"

// Focus moves focus into this region. The direction, when valid, is the
// direction the focus travelled to get here and is used to record the
// way back; pass DirectionNone when there is none.
//
// Resolution tries, in order: the history cache, the default-focus
// element, and the first focusable descendant in tree order. With the
// default-focus-overrides-history flag set, the default-focus element is
// tried before the cache. The first attempt that lands focus wins;
// if none does, Focus returns false and focus is unchanged.
func (r *Region) Focus(dir Direction) bool {
	if r.window == nil {
		return false
	}
	prev := r.window.Focused()
	if !r.focusWithin() {
		debug.Log("Region.Focus: id=%q dir=%v no candidate took focus", r.id, dir)
		return false
	}
	r.recordReverseHistory(dir, prev)
	return true
}

func (r *Region) focusWithin() bool {
	if r.defaultOverridesHistory {
		return r.focusDefault() || r.focusCached() || r.focusFirst()
	}
	return r.focusCached() || r.focusDefault() || r.focusFirst()
}

func (r *Region) focusDefault() bool {
	return r.defaultFocus != nil && r.window.Focus(r.defaultFocus)
}

func (r *Region) focusCached() bool {
	el := r.cache.Focused(r.clock.Now())
	return el != nil && r.window.Focus(el)
}

func (r *Region) focusFirst() bool {
	first := r.container.firstFocusableDescendant()
	return first != nil && r.window.Focus(first)
}

// recordReverseHistory remembers how to nudge back to where the focus
// came from: after arriving here travelling in dir, the opposite
// direction maps to the source region. Only a missing slot is written,
// so a slot keeps its first association until it expires.
func (r *Region) recordReverseHistory(dir Direction, prev *Element) {
	if !dir.IsValid() || prev == nil {
		return
	}
	source := prev.Region()
	if source == nil || source == r {
		return
	}
	now := r.clock.Now()
	back := dir.Opposite()
	if r.cache.Target(back, now) != nil {
		return
	}
	debug.Log("Region.recordReverseHistory: id=%q %v -> %q", r.id, back, source.id)
	r.cache.SaveTarget(back, source, now)
}

// onFocusChange is the region's reaction to every focus transfer in the
// window. It keeps the has-focus flag current, snapshots the departing
// descendant into the history cache on loss, and clears cross-region
// history on internal rotation when configured to.
func (r *Region) onFocusChange(ev FocusEvent) {
	hadFocus := r.hasFocus
	r.hasFocus = r.contains(ev.Next)

	if hadFocus && !r.hasFocus && ev.Prev != nil {
		debug.Log("Region.onFocusChange: id=%q lost focus, caching %q", r.id, ev.Prev.id)
		r.cache.SaveFocused(ev.Prev, r.clock.Now())
	}

	if r.clearHistoryOnRotate && hadFocus && r.hasFocus && r.contains(ev.Prev) {
		debug.Log("Region.onFocusChange: id=%q internal rotate, clearing history", r.id)
		r.cache.ClearRegionHistory()
	}
}
