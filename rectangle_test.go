package maple

import "testing"

func TestRectangleIsOverStrict(t *testing.T) {
	r := NewRectangle("red", Pt(10, 20), Sz(100, 50))
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"center", Pt(60, 45), true},
		{"just inside corner", Pt(10.01, 20.01), true},
		{"left edge", Pt(10, 45), false},
		{"right edge", Pt(110, 45), false},
		{"top edge", Pt(60, 20), false},
		{"bottom edge", Pt(60, 70), false},
		{"corner", Pt(10, 20), false},
		{"outside", Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsOver(tt.p); got != tt.expect {
				t.Errorf("IsOver(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestRectangleIsOverUsesAbsolutePosition(t *testing.T) {
	parent := NewPanel(Pt(100, 100), Sz(500, 500), ColorNone)
	r := NewRectangle("red", Pt(10, 10), Sz(20, 20))
	parent.Add(r, "box", -1)

	if r.IsOver(Pt(15, 15)) {
		t.Error("hit reported at panel-local coordinates")
	}
	if !r.IsOver(Pt(115, 115)) {
		t.Error("no hit at absolute coordinates")
	}
}

func TestRectangleDragRequiresPrimaryButtonOverShape(t *testing.T) {
	tests := []struct {
		name   string
		press  PointerEvent
		starts bool
	}{
		{"primary over shape", PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft}, true},
		{"secondary over shape", PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonRight}, false},
		{"primary off shape", PointerEvent{Kind: EventButtonDown, Pos: Pt(90, 90), Button: MouseButtonLeft}, false},
		{"primary on boundary", PointerEvent{Kind: EventButtonDown, Pos: Pt(10, 15), Button: MouseButtonLeft}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRectangle("red", Pt(10, 10), Sz(20, 20))
			r.SetDraggable(true)
			disp := NewDispatcher()
			r.Bind(disp)

			disp.Dispatch(tt.press)
			_, dragging := r.Drag().DragPoint()
			if dragging != tt.starts {
				t.Errorf("dragging = %v, want %v", dragging, tt.starts)
			}
		})
	}
}

func TestRectangleDragRoundTrip(t *testing.T) {
	r := NewRectangle("red", Pt(10, 10), Sz(20, 20))
	r.SetDraggable(true)
	disp := NewDispatcher()
	r.Bind(disp)

	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(12, 14), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(40, 50)})
	disp.Dispatch(PointerEvent{Kind: EventButtonUp, Pos: Pt(40, 50), Button: MouseButtonLeft})

	// Position offset equals pointer travel, regardless of grab point.
	if r.Position != Pt(38, 46) {
		t.Errorf("position = %v, want (38, 46)", r.Position)
	}
	if _, dragging := r.Drag().DragPoint(); dragging {
		t.Error("session still open after primary release")
	}
}

func TestRectangleSecondaryReleaseKeepsDragAlive(t *testing.T) {
	r := NewRectangle("red", Pt(10, 10), Sz(20, 20))
	r.SetDraggable(true)
	disp := NewDispatcher()
	r.Bind(disp)

	disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: Pt(15, 15), Button: MouseButtonLeft})
	disp.Dispatch(PointerEvent{Kind: EventButtonUp, Pos: Pt(15, 15), Button: MouseButtonRight})
	if _, dragging := r.Drag().DragPoint(); !dragging {
		t.Error("secondary release closed the session")
	}

	disp.Dispatch(PointerEvent{Kind: EventMove, Pos: Pt(20, 15)})
	if r.Position != Pt(15, 10) {
		t.Errorf("position = %v, want (15, 10)", r.Position)
	}
}

func TestRectangleDrawSkipsNone(t *testing.T) {
	dst := &recordSurface{}
	NewRectangle(ColorNone, Pt(0, 0), Sz(10, 10)).Draw(dst, Pt(0, 0))
	if len(dst.ops) != 0 {
		t.Errorf("ColorNone rectangle emitted %d ops", len(dst.ops))
	}

	NewRectangle("red", Pt(3, 4), Sz(10, 10)).Draw(dst, Pt(1, 1))
	rects := dst.filter("rect")
	if len(rects) != 1 || rects[0].pos != Pt(4, 5) {
		t.Errorf("rect ops = %+v", rects)
	}
}
