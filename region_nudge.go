package dial

import "github.com/grindlemire/go-dial/internal/debug"

// NudgeShortcut handles a directional nudge by jumping straight to the
// configured shortcut target. It returns false when no shortcut is
// configured, the direction does not match, or the target already holds
// focus; the caller then falls through to cross-region navigation, so a
// second nudge in the shortcut direction keeps moving instead of being
// swallowed.
func (r *Region) NudgeShortcut(dir Direction) bool {
	if r.window == nil || r.shortcutTarget == nil {
		return false
	}
	if dir != r.shortcutDir {
		return false
	}
	if r.shortcutTarget.focused {
		debug.Log("Region.NudgeShortcut: id=%q target already focused, falling through", r.id)
		return false
	}
	debug.Log("Region.NudgeShortcut: id=%q dir=%v -> %q", r.id, dir, r.shortcutTarget.id)
	return r.window.Focus(r.shortcutTarget)
}

// NudgeToRegion moves focus out of this region in the given direction:
// first into the explicitly configured target region, then into the
// cached one from navigation history. Each candidate runs its own focus
// resolution; the first that takes focus wins. When neither does, the
// nudge fails and focus stays where it was.
//
// A configured target ID that does not resolve to a live attached region
// is a miss, not an error.
func (r *Region) NudgeToRegion(dir Direction) bool {
	if r.window == nil || !dir.IsValid() {
		return false
	}
	if target := r.window.Region(r.nudgeTargets[dir]); target != nil && target.Focus(dir) {
		debug.Log("Region.NudgeToRegion: id=%q dir=%v -> configured %q", r.id, dir, target.id)
		return true
	}
	if target := r.cache.Target(dir, r.clock.Now()); target != nil && target.Focus(dir) {
		debug.Log("Region.NudgeToRegion: id=%q dir=%v -> cached %q", r.id, dir, target.id)
		return true
	}
	return false
}

// SetBoundsOffset pins absolute edge offsets, bypassing layout-direction
// mirroring.
func (r *Region) SetBoundsOffset(edges Edges) {
	r.explicitOffset = &edges
}

// BoundsOffset returns the edge offsets applied to the container's
// bounds for spatial searches. Layout-relative values mirror
// horizontally under RTL unless absolute offsets were pinned with
// SetBoundsOffset.
func (r *Region) BoundsOffset() Edges {
	if r.explicitOffset != nil {
		return *r.explicitOffset
	}
	edges := Edges{
		Top:    r.topOffset,
		Right:  r.endOffset,
		Bottom: r.bottomOffset,
		Left:   r.startOffset,
	}
	if r.window != nil && r.window.LayoutDirection() == LayoutRTL {
		return edges.Mirror()
	}
	return edges
}

// EffectiveBounds returns the container's bounds grown by the bounds
// offsets. This is the rectangle spatial searches compare, letting a
// region claim nudges aimed beyond its painted edge.
func (r *Region) EffectiveBounds() Rect {
	return r.container.Bounds().Outset(r.BoundsOffset())
}
