package maple

import "testing"

func TestSliderSetValuePositionsBar(t *testing.T) {
	// Track 120 long, bar 20 deep: 100 pixels of travel.
	tests := []struct {
		name    string
		value   float64
		wantPos Point
	}{
		{"minimum", 0, Pt(0, 0)},
		{"middle", 50, Pt(50, 0)},
		{"maximum", 100, Pt(100, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, tt.value)
			if s.Bar().Position != tt.wantPos {
				t.Errorf("bar at %v, want %v", s.Bar().Position, tt.wantPos)
			}
			if s.Value() != tt.value {
				t.Errorf("Value() = %v, want %v", s.Value(), tt.value)
			}
		})
	}
}

func TestSliderReverse(t *testing.T) {
	s := NewSlider("gray", Pt(0, 0), Sz(120, 20), Horizontal, true, Range{0, 100}, 0)
	if s.Bar().Position != Pt(100, 0) {
		t.Errorf("reverse minimum: bar at %v, want (100, 0)", s.Bar().Position)
	}
	s.SetValue(100)
	if s.Bar().Position != Pt(0, 0) {
		t.Errorf("reverse maximum: bar at %v, want (0, 0)", s.Bar().Position)
	}
	s.SetValue(25)
	if s.Bar().Position != Pt(75, 0) {
		t.Errorf("reverse quarter: bar at %v, want (75, 0)", s.Bar().Position)
	}
}

func TestSliderVertical(t *testing.T) {
	s := NewSlider("gray", Pt(0, 0), Sz(20, 120), Vertical, false, Range{0, 100}, 30)
	if s.Bar().Position != Pt(0, 30) {
		t.Errorf("bar at %v, want (0, 30)", s.Bar().Position)
	}
	if s.Bar().Size != Sz(20, 20) {
		t.Errorf("bar size = %v, want 20x20", s.Bar().Size)
	}
}

func TestSliderBarIsTrackChild(t *testing.T) {
	s := NewSlider("gray", Pt(10, 40), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	if s.Bar().Parent != s.Base() {
		t.Fatal("bar not parented to the track")
	}
	// Bar absolute position resolves through the track, so a nested or moved
	// slider keeps its bar aligned.
	if got := s.Bar().AbsolutePosition(); got != Pt(10, 40) {
		t.Errorf("bar absolute = %v, want (10, 40)", got)
	}
	s.Base().Position = Pt(100, 100)
	if got := s.Bar().AbsolutePosition(); got != Pt(100, 100) {
		t.Errorf("bar absolute after track move = %v, want (100, 100)", got)
	}
}

func TestSliderValueRangeMapping(t *testing.T) {
	s := NewSlider("gray", Pt(0, 0), Sz(120, 20), Horizontal, false, Range{-40, 60}, 10)
	// (10 - (-40)) / 100 span over 100 travel = 50 pixels.
	if s.Bar().Position != Pt(50, 0) {
		t.Errorf("bar at %v, want (50, 0)", s.Bar().Position)
	}
}

func TestSliderDragUpdatesValue(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	disp := NewDispatcher()
	s.Bind(disp)

	var got []float64
	s.AddObserver(func(source any, value any) {
		if source != any(s) {
			t.Errorf("observer source = %v, want the slider", source)
		}
		got = append(got, value.(float64))
	})

	// Grab the bar 5 pixels in from its left edge, then drag right.
	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(65, 15)})

	if s.Value() != 50 {
		t.Errorf("Value() = %v, want 50", s.Value())
	}
	if s.Bar().Position != Pt(50, 0) {
		t.Errorf("bar at %v, want (50, 0)", s.Bar().Position)
	}
	if len(got) != 1 || got[0] != 50 {
		t.Errorf("notifications = %v, want [50]", got)
	}
}

func TestSliderDragClampsToTrack(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	disp := NewDispatcher()
	s.Bind(disp)

	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(500, 15)})
	if s.Value() != 100 || s.Bar().Position != Pt(100, 0) {
		t.Errorf("past the end: value %v, bar %v", s.Value(), s.Bar().Position)
	}

	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(-500, 15)})
	if s.Value() != 0 || s.Bar().Position != Pt(0, 0) {
		t.Errorf("before the start: value %v, bar %v", s.Value(), s.Bar().Position)
	}
}

func TestSliderDragIgnoresCrossAxis(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	disp := NewDispatcher()
	s.Bind(disp)

	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(65, 300)})

	if s.Bar().Position.Y != 0 {
		t.Errorf("bar drifted off axis: %v", s.Bar().Position)
	}
	if s.Value() != 50 {
		t.Errorf("Value() = %v, want 50", s.Value())
	}
}

func TestSliderDragRequiresPressOnBar(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	disp := NewDispatcher()
	s.Bind(disp)

	// Press on the track but past the bar.
	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(100, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(120, 15)})
	if s.Value() != 0 {
		t.Errorf("Value() = %v, want 0 (no drag session)", s.Value())
	}
}

func TestSliderDragEndsOnRelease(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 0)
	disp := NewDispatcher()
	s.Bind(disp)

	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(45, 15)})
	disp.Dispatch(PointerEvent{Kind: EventButtonUp, Pos: Pt(45, 15), Button: MouseButtonLeft})

	value := s.Value()
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(90, 15)})
	if s.Value() != value {
		t.Errorf("value moved after release: %v -> %v", value, s.Value())
	}
}

func TestSliderDraw(t *testing.T) {
	s := NewSlider("gray", Pt(10, 10), Sz(120, 20), Horizontal, false, Range{0, 100}, 50)
	dst := &recordSurface{}
	s.Draw(dst, Pt(0, 0))

	rects := dst.filter("rect")
	if len(rects) != 2 {
		t.Fatalf("recorded %d rects, want 2", len(rects))
	}
	if rects[0].pos != Pt(10, 10) || rects[0].size != Sz(120, 20) || rects[0].color != "gray" {
		t.Errorf("track = %+v", rects[0])
	}
	if rects[1].pos != Pt(60, 10) || rects[1].size != Sz(20, 20) || rects[1].color != "black" {
		t.Errorf("bar = %+v", rects[1])
	}
}
