package maple

import "math"

// Point is a position on an x-y plane. Depending on context it is either an
// offset relative to a parent node's origin or an absolute screen coordinate.
// Points are not necessarily on screen and may be negative.
type Point struct {
	X, Y float64
}

// Pt creates a Point. Panics if either coordinate is NaN.
func Pt(x, y float64) Point {
	if math.IsNaN(x) || math.IsNaN(y) {
		panic("maple: point coordinate is NaN")
	}
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and offset.
func (p Point) Add(offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Sub returns the component-wise difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Component returns the coordinate at index i: 0 (or -2) is X, 1 (or -1) is Y.
// Any other index is a contract violation and panics. It exists for the
// draw-primitive boundary and for axis-generic code (sliders); everything
// else should use the named fields.
func (p Point) Component(i int) float64 {
	switch i {
	case 0, -2:
		return p.X
	case 1, -1:
		return p.Y
	default:
		panic("maple: point component index out of range")
	}
}

// Size is the width and height of an object. Both components are >= 0.
type Size struct {
	Width, Height float64
}

// Sz creates a Size. Panics if either dimension is negative or NaN.
func Sz(width, height float64) Size {
	if math.IsNaN(width) || math.IsNaN(height) {
		panic("maple: size dimension is NaN")
	}
	if width < 0 || height < 0 {
		panic("maple: size dimension is negative")
	}
	return Size{Width: width, Height: height}
}

// Component returns the dimension at index i: 0 (or -2) is Width, 1 (or -1)
// is Height. Any other index panics.
func (s Size) Component(i int) float64 {
	switch i {
	case 0, -2:
		return s.Width
	case 1, -1:
		return s.Height
	default:
		panic("maple: size component index out of range")
	}
}
