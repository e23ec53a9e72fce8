package geom

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %d, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"zero position": {
			rect:   NewRect(0, 0, 10, 10),
			right:  10,
			bottom: 10,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Center(t *testing.T) {
	type tc struct {
		rect     Rect
		expected Point
	}

	tests := map[string]tc{
		"even dimensions": {
			rect:     NewRect(0, 0, 10, 10),
			expected: Point{X: 5, Y: 5},
		},
		"odd dimensions": {
			rect:     NewRect(0, 0, 5, 3),
			expected: Point{X: 2, Y: 1},
		},
		"offset rect": {
			rect:     NewRect(10, 20, 4, 6),
			expected: Point{X: 12, Y: 23},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.expected {
				t.Errorf("Center() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	type tc struct {
		rect   Rect
		edges  Edges
		inset  Rect
		outset Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:   NewRect(10, 10, 20, 20),
			edges:  EdgeAll(2),
			inset:  NewRect(12, 12, 16, 16),
			outset: NewRect(8, 8, 24, 24),
		},
		"asymmetric": {
			rect:   NewRect(0, 0, 10, 10),
			edges:  EdgeTRBL(1, 2, 3, 4),
			inset:  NewRect(4, 1, 4, 6),
			outset: NewRect(-4, -1, 16, 14),
		},
		"zero edges": {
			rect:   NewRect(5, 5, 10, 10),
			edges:  Edges{},
			inset:  NewRect(5, 5, 10, 10),
			outset: NewRect(5, 5, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.inset {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.inset)
			}
			if got := tt.rect.Outset(tt.edges); got != tt.outset {
				t.Errorf("Outset(%+v) = %+v, want %+v", tt.edges, got, tt.outset)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
		},
		"disjoint rects": {
			a:        NewRect(0, 0, 5, 5),
			b:        NewRect(10, 10, 5, 5),
			expected: Rect{},
		},
		"touching edges": {
			a:        NewRect(0, 0, 5, 5),
			b:        NewRect(5, 0, 5, 5),
			expected: Rect{},
		},
		"contained rect": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: NewRect(5, 5, 5, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if gotOverlap := tt.a.Intersects(tt.b); gotOverlap != !tt.expected.IsEmpty() {
				t.Errorf("Intersects() = %v, want %v", gotOverlap, !tt.expected.IsEmpty())
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer, inner Rect
		expected     bool
	}

	tests := map[string]tc{
		"fully contained": {
			outer:    NewRect(0, 0, 20, 20),
			inner:    NewRect(5, 5, 5, 5),
			expected: true,
		},
		"partially outside": {
			outer:    NewRect(0, 0, 10, 10),
			inner:    NewRect(5, 5, 10, 10),
			expected: false,
		},
		"empty inner always contained": {
			outer:    NewRect(0, 0, 10, 10),
			inner:    Rect{},
			expected: true,
		},
		"empty outer contains nothing": {
			outer:    Rect{},
			inner:    NewRect(0, 0, 1, 1),
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.expected {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEdges_Mirror(t *testing.T) {
	type tc struct {
		edges    Edges
		expected Edges
	}

	tests := map[string]tc{
		"asymmetric horizontal": {
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: EdgeTRBL(1, 4, 3, 2),
		},
		"symmetric is unchanged": {
			edges:    EdgeSymmetric(2, 5),
			expected: EdgeSymmetric(2, 5),
		},
		"zero": {
			edges:    Edges{},
			expected: Edges{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.edges.Mirror(); got != tt.expected {
				t.Errorf("Mirror() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.edges.Mirror().Mirror(); got != tt.edges {
				t.Errorf("Mirror() is not an involution: %+v -> %+v", tt.edges, got)
			}
		})
	}
}
