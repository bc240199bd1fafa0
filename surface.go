package maple

// Surface is the drawing boundary: the core emits filled rectangles, line
// segments, and text to an injected surface and never rasterizes anything
// itself. Color strings are resolved by the implementation; the core filters
// out ColorNone before emitting. Positions are absolute pixel coordinates.
type Surface interface {
	FillRect(pos Point, size Size, color string)
	StrokeLine(from, to Point, color string)
	DrawText(text string, pos Point, color string)
	MeasureText(text string) Size
}

// Drawable is anything that can render itself onto a Surface. The origin is
// the absolute position of the drawable's parent; implementations draw at
// their own Position offset from it, which is what makes every stated
// position relative to the enclosing panel.
type Drawable interface {
	Draw(dst Surface, origin Point)
	Base() *Node
}
