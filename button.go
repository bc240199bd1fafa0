package maple

const tagButtonClick = "button.click"

// Button is a clickable rectangle holding a boolean value. A primary-button
// press strictly inside the shape toggles the value, swaps the fill between
// PrimaryColor and SecondaryColor, and notifies observers with the new
// value. The click binding always resubscribes under the same tag, so a
// click never consumes the event for nodes below it.
type Button struct {
	Rectangle
	Observable

	Value          bool
	PrimaryColor   string
	SecondaryColor string
}

// NewButton creates a button showing PrimaryColor while Value is true.
func NewButton(pos Point, size Size, primary, secondary string, initial bool) *Button {
	b := &Button{PrimaryColor: primary, SecondaryColor: secondary, Value: initial}
	b.Position = pos
	b.Size = size
	b.Color = primary
	if !initial {
		b.Color = secondary
	}
	b.drag = NewDraggable(&b.Node, false)
	b.drag.StartDrag = b.startDrag
	b.drag.EndDrag = b.endDrag
	return b
}

// Bind registers the click binding with the dispatcher.
func (b *Button) Bind(disp *Dispatcher) {
	disp.Subscribe(&b.Node, b.clickSub())
}

func (b *Button) clickSub() Subscription {
	return Sub(EventButtonDown, tagButtonClick, b.click)
}

func (b *Button) click(ev PointerEvent) []Subscription {
	if b.IsOver(ev.Pos) && ev.Button == MouseButtonLeft {
		b.Value = !b.Value
		if b.Value {
			b.Color = b.PrimaryColor
		} else {
			b.Color = b.SecondaryColor
		}
		b.Notify(b, b.Value)
	}
	return []Subscription{b.clickSub()}
}
