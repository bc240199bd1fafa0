package maple

// Line is a leaf drawable segment between two points in its parent's
// coordinate space. The start point doubles as the node position.
type Line struct {
	Node
	End   Point
	Color string
}

// NewLine creates a line from start to end.
func NewLine(color string, start, end Point) *Line {
	l := &Line{End: end, Color: color}
	l.Position = start
	return l
}

// Base returns the line's scene node.
func (l *Line) Base() *Node {
	return &l.Node
}

// Draw strokes the segment at its offset from origin. ColorNone draws
// nothing.
func (l *Line) Draw(dst Surface, origin Point) {
	if l.Color == ColorNone {
		return
	}
	dst.StrokeLine(l.Position.Add(origin), l.End.Add(origin), l.Color)
}
