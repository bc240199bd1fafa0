package maple

import "fmt"

// HAlign anchors a text box horizontally on its position.
type HAlign uint8

const (
	AlignLeft   HAlign = iota // position is the left edge
	AlignCenter               // position is the horizontal center
	AlignRight                // position is the right edge
)

// VAlign anchors a text box vertically on its position.
type VAlign uint8

const (
	AlignTop    VAlign = iota // position is the top edge
	AlignMiddle               // position is the vertical middle
	AlignBottom               // position is the bottom edge
)

// TextBox is a leaf drawable showing one line of text over an optional
// background fill. Its size comes from the surface's text measurement at
// draw time, so the same box renders correctly on any Surface.
type TextBox struct {
	Node
	Text       string
	TextColor  string
	Background string
	HAlign     HAlign
	VAlign     VAlign
}

// NewTextBox creates a text box. Pass ColorNone as background for bare text.
func NewTextBox(text, textColor string, pos Point, background string) *TextBox {
	t := &TextBox{Text: text, TextColor: textColor, Background: background}
	t.Position = pos
	return t
}

// Base returns the text box's scene node.
func (t *TextBox) Base() *Node {
	return &t.Node
}

// Listen returns an observer that replaces the displayed text with the
// string form of every value it receives.
func (t *TextBox) Listen() ObserverFunc {
	return func(source any, value any) {
		t.Text = fmt.Sprint(value)
	}
}

// Draw measures the text, shifts by the alignment anchors, fills the
// background unless it is ColorNone, and blits the text.
func (t *TextBox) Draw(dst Surface, origin Point) {
	size := dst.MeasureText(t.Text)

	pos := t.Position.Add(origin)
	switch t.HAlign {
	case AlignCenter:
		pos.X -= size.Width / 2
	case AlignRight:
		pos.X -= size.Width
	}
	switch t.VAlign {
	case AlignMiddle:
		pos.Y -= size.Height / 2
	case AlignBottom:
		pos.Y -= size.Height
	}

	if t.Background != ColorNone {
		dst.FillRect(pos, size, t.Background)
	}
	dst.DrawText(t.Text, pos, t.TextColor)
}
