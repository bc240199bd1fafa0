package maple

import "math"

// ColorNone disables the visual a color string controls: a dataset with
// LineColor == ColorNone draws no line segments, a TextBox with background
// ColorNone draws no fill, and so on. How every other color string is
// resolved to actual pixels is up to the Surface implementation.
const ColorNone = "none"

// MouseButton identifies which mouse button an event carries.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsLoose reports whether (x, y) lies inside the rectangle or within
// floating-point tolerance of one of its edges. The graph clipper uses this
// so that a previously clipped endpoint sitting exactly on an edge is not
// clipped again.
func (r Rect) ContainsLoose(x, y float64) bool {
	withinX := (x >= r.X && x <= r.X+r.Width) || isClose(x, r.X) || isClose(x, r.X+r.Width)
	withinY := (y >= r.Y && y <= r.Y+r.Height) || isClose(y, r.Y) || isClose(y, r.Y+r.Height)
	return withinX && withinY
}

// Range is a general-purpose min/max interval. Used for a graph's visible
// domain and range and for slider value ranges.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Union returns the smallest range covering both r and other.
func (r Range) Union(other Range) Range {
	return Range{Min: math.Min(r.Min, other.Min), Max: math.Max(r.Max, other.Max)}
}

// --- Float helpers ---

// isClose reports whether a and b are equal within a relative tolerance of
// 1e-9 (matching the usual "close enough for accumulated pixel arithmetic"
// bar; exact zero only matches exact zero).
func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// clamp limits v to the interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}
