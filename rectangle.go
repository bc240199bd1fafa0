package maple

// Rectangle is a filled, optionally draggable leaf drawable.
type Rectangle struct {
	Node
	Size  Size
	Color string

	drag *Draggable
}

// NewRectangle creates a rectangle with dragging disabled. Call
// SetDraggable(true) and Bind to make it draggable.
func NewRectangle(color string, pos Point, size Size) *Rectangle {
	r := &Rectangle{Size: size, Color: color}
	r.Position = pos
	r.drag = NewDraggable(&r.Node, false)
	r.drag.StartDrag = r.startDrag
	r.drag.EndDrag = r.endDrag
	return r
}

// Base returns the rectangle's scene node.
func (r *Rectangle) Base() *Node {
	return &r.Node
}

// Drag exposes the rectangle's drag state machine.
func (r *Rectangle) Drag() *Draggable {
	return r.drag
}

// SetDraggable toggles whether drag starts are accepted. The dispatcher
// subscription (once bound) is kept either way.
func (r *Rectangle) SetDraggable(draggable bool) {
	r.drag.SetEnabled(draggable)
}

// Bind registers the rectangle's drag lifecycle with the dispatcher.
func (r *Rectangle) Bind(disp *Dispatcher) {
	r.drag.Bind(disp)
}

// IsOver reports whether p (an absolute position) lies strictly inside the
// rectangle. Boundary-touching points are not hits.
func (r *Rectangle) IsOver(p Point) bool {
	abs := r.AbsolutePosition()
	return abs.X < p.X && p.X < abs.X+r.Size.Width &&
		abs.Y < p.Y && p.Y < abs.Y+r.Size.Height
}

// Draw fills the rectangle at its offset from origin. ColorNone draws
// nothing.
func (r *Rectangle) Draw(dst Surface, origin Point) {
	if r.Color == ColorNone {
		return
	}
	dst.FillRect(r.Position.Add(origin), r.Size, r.Color)
}

// startDrag gates the generic drag start: the press must be over the shape
// and must be the primary button, otherwise the rectangle resubscribes for
// the next button-down without starting a session.
func (r *Rectangle) startDrag(ev PointerEvent) []Subscription {
	if r.IsOver(ev.Pos) && ev.Button == MouseButtonLeft {
		return r.drag.startDrag(ev)
	}
	return []Subscription{r.drag.StartSub()}
}

// endDrag only closes the session for the primary button; releasing any
// other button keeps the drag alive.
func (r *Rectangle) endDrag(ev PointerEvent) []Subscription {
	if ev.Button == MouseButtonLeft {
		return r.drag.endDrag(ev)
	}
	return []Subscription{r.drag.EndSub()}
}
