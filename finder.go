package dial

// Finder picks the best candidate rectangle in a direction. It is the
// spatial primitive behind cross-region nudges: the controller hands it
// the focused region's effective bounds plus every other region's, and
// nudges into the winner.
type Finder interface {
	// Find returns the index of the best candidate in the given
	// direction from source, or -1 when none qualifies.
	Find(source Rect, dir Direction, candidates []Rect) int
}

// BeamFinder scores candidates the way a dial user expects focus to
// move: candidates overlapping the source's projection along the travel
// direction (the beam) beat candidates outside it, and remaining ties
// break on a weighted distance that punishes sideways drift far more
// than forward travel.
type BeamFinder struct{}

var _ Finder = BeamFinder{}

// Find implements Finder.
func (BeamFinder) Find(source Rect, dir Direction, candidates []Rect) int {
	best := -1
	for i, c := range candidates {
		if c.IsEmpty() || !isCandidate(dir, source, c) {
			continue
		}
		if best == -1 || isBetterCandidate(dir, source, c, candidates[best]) {
			best = i
		}
	}
	return best
}

// isCandidate reports whether dest is at least partially in the given
// direction from source.
func isCandidate(dir Direction, source, dest Rect) bool {
	switch dir {
	case Left:
		return (source.Right() > dest.Right() || source.X >= dest.Right()) && source.X > dest.X
	case Right:
		return (source.X < dest.X || source.Right() <= dest.X) && source.Right() < dest.Right()
	case Up:
		return (source.Bottom() > dest.Bottom() || source.Y >= dest.Bottom()) && source.Y > dest.Y
	case Down:
		return (source.Y < dest.Y || source.Bottom() <= dest.Y) && source.Bottom() < dest.Bottom()
	}
	return false
}

// isBetterCandidate reports whether rect1 beats rect2 as the target of a
// move in dir. Both rects must already be candidates.
func isBetterCandidate(dir Direction, source, rect1, rect2 Rect) bool {
	if beamBeats(dir, source, rect1, rect2) {
		return true
	}
	if beamBeats(dir, source, rect2, rect1) {
		return false
	}
	return weightedDistance(dir, source, rect1) < weightedDistance(dir, source, rect2)
}

// beamBeats reports whether rect1 wins over rect2 purely on beam
// membership.
func beamBeats(dir Direction, source, rect1, rect2 Rect) bool {
	rect1InBeam := beamsOverlap(dir, source, rect1)
	rect2InBeam := beamsOverlap(dir, source, rect2)
	if rect2InBeam || !rect1InBeam {
		return false
	}
	// rect1 is in the beam and rect2 is not. If rect2 is not fully past
	// the source's edge it cannot win.
	if !isToDirectionOf(dir, source, rect2) {
		return true
	}
	// Horizontal travel: the beam always wins.
	if dir == Left || dir == Right {
		return true
	}
	// Vertical travel: the beam wins only up to rect2's far edge.
	return majorAxisDistance(dir, source, rect1) < majorAxisDistanceToFarEdge(dir, source, rect2)
}

// beamsOverlap reports whether dest's extent on the axis orthogonal to
// travel overlaps source's.
func beamsOverlap(dir Direction, source, dest Rect) bool {
	switch dir {
	case Left, Right:
		return dest.Bottom() >= source.Y && dest.Y <= source.Bottom()
	case Up, Down:
		return dest.Right() >= source.X && dest.X <= source.Right()
	}
	return false
}

// isToDirectionOf reports whether dest is entirely past source's leading
// edge in the travel direction.
func isToDirectionOf(dir Direction, source, dest Rect) bool {
	switch dir {
	case Left:
		return source.X >= dest.Right()
	case Right:
		return source.Right() <= dest.X
	case Up:
		return source.Y >= dest.Bottom()
	case Down:
		return source.Bottom() <= dest.Y
	}
	return false
}

// majorAxisDistance is the gap between source's leading edge and dest's
// nearest edge along the travel direction, clamped at zero when the
// rects overlap on that axis.
func majorAxisDistance(dir Direction, source, dest Rect) int {
	var d int
	switch dir {
	case Left:
		d = source.X - dest.Right()
	case Right:
		d = dest.X - source.Right()
	case Up:
		d = source.Y - dest.Bottom()
	case Down:
		d = dest.Y - source.Bottom()
	}
	return max(0, d)
}

// majorAxisDistanceToFarEdge measures to dest's far edge instead,
// clamped at one.
func majorAxisDistanceToFarEdge(dir Direction, source, dest Rect) int {
	var d int
	switch dir {
	case Left:
		d = source.X - dest.X
	case Right:
		d = dest.Right() - source.Right()
	case Up:
		d = source.Y - dest.Y
	case Down:
		d = dest.Bottom() - source.Bottom()
	}
	return max(1, d)
}

// minorAxisDistance is the sideways drift between the centers on the
// axis orthogonal to travel.
func minorAxisDistance(dir Direction, source, dest Rect) int {
	var d int
	switch dir {
	case Left, Right:
		d = (source.Y + source.Height/2) - (dest.Y + dest.Height/2)
	case Up, Down:
		d = (source.X + source.Width/2) - (dest.X + dest.Width/2)
	}
	if d < 0 {
		return -d
	}
	return d
}

// weightedDistance favors travel-axis progress 13:1 over sideways drift.
func weightedDistance(dir Direction, source, dest Rect) int {
	major := majorAxisDistance(dir, source, dest)
	minor := minorAxisDistance(dir, source, dest)
	return 13*major*major + minor*minor
}
