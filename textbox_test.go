package maple

import "testing"

func TestTextBoxAlignment(t *testing.T) {
	// recordSurface measures "hello" as 35x13.
	tests := []struct {
		name   string
		h      HAlign
		v      VAlign
		expect Point
	}{
		{"left top", AlignLeft, AlignTop, Pt(100, 100)},
		{"center top", AlignCenter, AlignTop, Pt(82.5, 100)},
		{"right top", AlignRight, AlignTop, Pt(65, 100)},
		{"left middle", AlignLeft, AlignMiddle, Pt(100, 93.5)},
		{"left bottom", AlignLeft, AlignBottom, Pt(100, 87)},
		{"center middle", AlignCenter, AlignMiddle, Pt(82.5, 93.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewTextBox("hello", "black", Pt(100, 100), ColorNone)
			box.HAlign = tt.h
			box.VAlign = tt.v

			dst := &recordSurface{}
			box.Draw(dst, Pt(0, 0))

			texts := dst.filter("text")
			if len(texts) != 1 {
				t.Fatalf("recorded %d text ops, want 1", len(texts))
			}
			if texts[0].pos != tt.expect {
				t.Errorf("text drawn at %v, want %v", texts[0].pos, tt.expect)
			}
		})
	}
}

func TestTextBoxBackground(t *testing.T) {
	box := NewTextBox("hi", "white", Pt(10, 10), "navy")
	dst := &recordSurface{}
	box.Draw(dst, Pt(5, 0))

	rects := dst.filter("rect")
	if len(rects) != 1 {
		t.Fatalf("recorded %d rects, want 1", len(rects))
	}
	if rects[0].pos != Pt(15, 10) || rects[0].size != Sz(14, 13) || rects[0].color != "navy" {
		t.Errorf("background = %+v", rects[0])
	}
	texts := dst.filter("text")
	if len(texts) != 1 || texts[0].pos != Pt(15, 10) {
		t.Errorf("text = %+v", texts)
	}
}

func TestTextBoxNoBackgroundForNone(t *testing.T) {
	box := NewTextBox("hi", "white", Pt(0, 0), ColorNone)
	dst := &recordSurface{}
	box.Draw(dst, Pt(0, 0))
	if rects := dst.filter("rect"); len(rects) != 0 {
		t.Errorf("ColorNone background emitted %d rects", len(rects))
	}
}

func TestTextBoxListen(t *testing.T) {
	box := NewTextBox("initial", "black", Pt(0, 0), ColorNone)
	listen := box.Listen()

	listen(nil, 42)
	if box.Text != "42" {
		t.Errorf("Text = %q, want 42", box.Text)
	}
	listen(nil, 3.5)
	if box.Text != "3.5" {
		t.Errorf("Text = %q, want 3.5", box.Text)
	}
	listen(nil, "done")
	if box.Text != "done" {
		t.Errorf("Text = %q, want done", box.Text)
	}
}

func TestLineDraw(t *testing.T) {
	l := NewLine("black", Pt(1, 2), Pt(3, 4))
	dst := &recordSurface{}
	l.Draw(dst, Pt(10, 10))

	lines := dst.filter("line")
	if len(lines) != 1 {
		t.Fatalf("recorded %d lines, want 1", len(lines))
	}
	if lines[0].from != Pt(11, 12) || lines[0].to != Pt(13, 14) {
		t.Errorf("line = %v -> %v", lines[0].from, lines[0].to)
	}

	dst = &recordSurface{}
	NewLine(ColorNone, Pt(0, 0), Pt(1, 1)).Draw(dst, Pt(0, 0))
	if len(dst.ops) != 0 {
		t.Errorf("ColorNone line emitted %d ops", len(dst.ops))
	}
}
