package model

// Rect is an axis-aligned rectangle in page-pixel coordinates.
// X1 < X2 and Y1 < Y2 for a valid rectangle. Callers discard invalid
// rectangles rather than repairing them.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect creates a rectangle from corner coordinates.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// IsValid returns true if the rectangle has positive extent on both axes.
func (r Rect) IsValid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

func valueInRange(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}

// Overlaps reports whether r and other overlap on both axes. On each axis
// the test checks whether either rectangle's minimum edge lies within the
// other's span, inclusive on both ends, so rectangles sharing an edge
// count as overlapping. This is the detector convention used throughout
// consolidation and expansion.
func (r Rect) Overlaps(other Rect) bool {
	xOverlap := valueInRange(r.X1, other.X1, other.X2) || valueInRange(other.X1, r.X1, r.X2)
	yOverlap := valueInRange(r.Y1, other.Y1, other.Y2) || valueInRange(other.Y1, r.Y1, r.Y2)
	return xOverlap && yOverlap
}

// Encloses reports whether other is fully contained in r, half-open: the
// containment is inclusive at r's edges but other must keep strictly
// positive extent inside r on both axes.
func (r Rect) Encloses(other Rect) bool {
	return r.X1 <= other.X1 && other.X1 < other.X2 && other.X2 <= r.X2 &&
		r.Y1 <= other.Y1 && other.Y1 < other.Y2 && other.Y2 <= r.Y2
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Scale returns the rectangle with both corners scaled by (sx, sy).
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X1: r.X1 * sx, Y1: r.Y1 * sy, X2: r.X2 * sx, Y2: r.Y2 * sy}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.X1 < out.X1 {
		out.X1 = other.X1
	}
	if other.Y1 < out.Y1 {
		out.Y1 = other.Y1
	}
	if other.X2 > out.X2 {
		out.X2 = other.X2
	}
	if other.Y2 > out.Y2 {
		out.Y2 = other.Y2
	}
	return out
}
