package maple

// Orientation selects the axis a slider's bar travels along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Thickness of a slider bar along its travel axis, in pixels.
const sliderDepth = 20.0

// Slider maps a draggable bar's one-dimensional position inside a track to a
// value in ValueRange, optionally reversed, and pushes every new value to
// its observers. The usable travel is the track length shortened by the
// bar's own thickness, which makes the position-to-value mapping bijective:
// SetValue followed by Value round-trips.
//
// The bar is an ordinary draggable Rectangle whose drag handlers are rebound
// to the slider, so dragging the bar moves the slider's public value instead
// of a free-floating rectangle.
type Slider struct {
	Observable

	ValueRange Range

	track       *Rectangle
	bar         *Rectangle
	orientation Orientation
	reverse     bool

	value     float64
	barOffset float64 // bar-axis grip offset captured at drag start
}

// NewSlider creates a slider. pos and size describe the track; start is the
// initial value and must lie in valueRange.
func NewSlider(color string, pos Point, size Size, orientation Orientation, reverse bool, valueRange Range, start float64) *Slider {
	s := &Slider{
		ValueRange:  valueRange,
		orientation: orientation,
		reverse:     reverse,
	}
	s.track = NewRectangle(color, pos, size)

	var barSize Size
	if orientation == Horizontal {
		barSize = Sz(sliderDepth, size.Height)
	} else {
		barSize = Sz(size.Width, sliderDepth)
	}
	s.bar = NewRectangle("black", Pt(0, 0), barSize)
	s.bar.AttachTo(&s.track.Node)
	s.bar.SetDraggable(true)
	s.bar.drag.StartDrag = s.startDrag
	s.bar.drag.Drag = s.drag

	s.SetValue(start)
	return s
}

// Base returns the track's scene node.
func (s *Slider) Base() *Node {
	return &s.track.Node
}

// Bar returns the draggable bar rectangle.
func (s *Slider) Bar() *Rectangle {
	return s.bar
}

// Bind registers the bar's drag lifecycle with the dispatcher.
func (s *Slider) Bind(disp *Dispatcher) {
	s.bar.Bind(disp)
}

// Value returns the slider's current semantic value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue positions the bar for value v and notifies observers with v.
func (s *Slider) SetValue(v float64) {
	axisPos := s.travelOrigin() + s.direction()*(v-s.ValueRange.Min)*s.travel()/s.ValueRange.Span()
	s.placeBar(axisPos)
	s.value = v
	s.Notify(s, v)
}

// Draw renders the track, then the bar on top.
func (s *Slider) Draw(dst Surface, origin Point) {
	s.track.Draw(dst, origin)
	s.bar.Draw(dst, origin.Add(s.track.Position))
}

// --- Geometry helpers (all in track-local coordinates) ---

func (s *Slider) axis() int {
	return int(s.orientation)
}

// length is the track extent along the travel axis.
func (s *Slider) length() float64 {
	return s.track.Size.Component(s.axis())
}

// travel is the usable bar travel: the track shortened by the bar's own
// thickness.
func (s *Slider) travel() float64 {
	return s.length() - sliderDepth
}

// travelOrigin is the bar-axis position corresponding to ValueRange.Min.
func (s *Slider) travelOrigin() float64 {
	if s.reverse {
		return s.travel()
	}
	return 0
}

func (s *Slider) direction() float64 {
	if s.reverse {
		return -1
	}
	return 1
}

// placeBar sets the bar's travel-axis position, leaving the cross axis at 0.
func (s *Slider) placeBar(axisPos float64) {
	if s.orientation == Horizontal {
		s.bar.Position = Pt(axisPos, 0)
	} else {
		s.bar.Position = Pt(0, axisPos)
	}
}

// valueFromBar recovers the semantic value from the bar's current position.
func (s *Slider) valueFromBar() float64 {
	cur := (s.bar.Position.Component(s.axis()) - s.travelOrigin()) * s.direction()
	return s.ValueRange.Span()*cur/s.travel() + s.ValueRange.Min
}

// --- Drag handlers (bound in place of the bar's own) ---

// startDrag delegates to the bar's gated start (over the bar, primary
// button) and captures where on the bar the grip landed, so the bar tracks
// the pointer without jumping to center on it.
func (s *Slider) startDrag(ev PointerEvent) []Subscription {
	subs := s.bar.startDrag(ev)
	if _, dragging := s.bar.drag.DragPoint(); dragging {
		s.barOffset = s.bar.Position.Component(s.axis()) - ev.Pos.Component(s.axis())
	}
	return subs
}

// drag moves the bar along the travel axis only, clamped to the track, and
// pushes the resulting value to observers when it changes.
func (s *Slider) drag(ev PointerEvent) []Subscription {
	if _, dragging := s.bar.drag.DragPoint(); !dragging {
		return nil
	}

	axisPos := clamp(ev.Pos.Component(s.axis())+s.barOffset, 0, s.travel())
	s.placeBar(axisPos)

	if v := s.valueFromBar(); v != s.value {
		s.value = v
		s.Notify(s, v)
	}

	*s.bar.drag.dragPoint = ev.Pos
	return []Subscription{s.bar.drag.MoveSub()}
}
