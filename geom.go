// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package dial

import "github.com/grindlemire/go-dial/internal/geom"

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Point represents an x/y coordinate.
type Point = geom.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}
