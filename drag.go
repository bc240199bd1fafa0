package maple

// Subscription tags used by the drag lifecycle. Resubscribing under the same
// tag is how a refused drag start stays a no-op for the dispatcher.
const (
	tagDragStart = "drag.start"
	tagDragMove  = "drag.move"
	tagDragEnd   = "drag.end"
)

// Draggable is the drag state machine for one node, layered on the
// dispatcher: Idle (no drag point) -> Dragging (drag point = last observed
// pointer position) -> Idle. While dragging, each move event applies the
// pointer delta to the node's own relative position rather than snapping the
// node to the pointer, so dragging is offset-stable no matter where inside
// the shape the press landed.
//
// StartDrag, Drag, and EndDrag are the reducer handlers bound into the
// dispatcher. They are fields so a composed widget can reroute them (Slider
// rebinds its bar's handlers to slider-owned ones); the subscriptions built
// by StartSub/MoveSub/EndSub always go through the current field values.
type Draggable struct {
	node      *Node
	enabled   bool
	dragPoint *Point

	StartDrag Handler
	Drag      Handler
	EndDrag   Handler
}

// NewDraggable creates a drag state machine for node. A disabled Draggable
// still subscribes and still consumes its turn in dispatch scanning as a
// no-op; enable it later with SetEnabled without rebinding.
func NewDraggable(node *Node, enabled bool) *Draggable {
	d := &Draggable{node: node, enabled: enabled}
	d.StartDrag = d.startDrag
	d.Drag = d.drag
	d.EndDrag = d.endDrag
	return d
}

// Node returns the node this state machine moves.
func (d *Draggable) Node() *Node {
	return d.node
}

// Enabled reports whether drag starts are accepted.
func (d *Draggable) Enabled() bool {
	return d.enabled
}

// SetEnabled toggles dragging at runtime. The subscription slot is kept
// either way.
func (d *Draggable) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// DragPoint returns the last observed pointer position and whether a drag
// session is active.
func (d *Draggable) DragPoint() (Point, bool) {
	if d.dragPoint == nil {
		return Point{}, false
	}
	return *d.dragPoint, true
}

// Bind registers the initial button-down subscription with the dispatcher.
// Call once per dispatcher; after that the reducers keep the node subscribed.
func (d *Draggable) Bind(disp *Dispatcher) {
	disp.Subscribe(d.node, d.StartSub())
}

// StartSub returns the button-down subscription for the current StartDrag.
func (d *Draggable) StartSub() Subscription {
	return Sub(EventButtonDown, tagDragStart, func(ev PointerEvent) []Subscription {
		return d.StartDrag(ev)
	})
}

// MoveSub returns the move subscription for the current Drag.
func (d *Draggable) MoveSub() Subscription {
	return Sub(EventMove, tagDragMove, func(ev PointerEvent) []Subscription {
		return d.Drag(ev)
	})
}

// EndSub returns the button-up subscription for the current EndDrag.
func (d *Draggable) EndSub() Subscription {
	return Sub(EventButtonUp, tagDragEnd, func(ev PointerEvent) []Subscription {
		return d.EndDrag(ev)
	})
}

// startDrag begins a drag session: records the pointer position and swaps
// the subscription list over to move + button-up. Shapes gate this behind
// their own hit test and a primary-button check before delegating here.
func (d *Draggable) startDrag(ev PointerEvent) []Subscription {
	if !d.enabled {
		return []Subscription{d.StartSub()}
	}
	p := ev.Pos
	d.dragPoint = &p
	return []Subscription{d.MoveSub(), d.EndSub()}
}

// drag applies the pointer delta to the node and advances the drag point.
func (d *Draggable) drag(ev PointerEvent) []Subscription {
	if d.dragPoint == nil {
		return nil
	}
	delta := ev.Pos.Sub(*d.dragPoint)
	d.node.Position = d.node.Position.Add(delta)
	*d.dragPoint = ev.Pos
	return []Subscription{d.MoveSub()}
}

// endDrag closes the session and returns to listening for button-down.
func (d *Draggable) endDrag(ev PointerEvent) []Subscription {
	d.dragPoint = nil
	return []Subscription{d.StartSub()}
}
