package maple

// panelElement is one named entry in a panel's draw stack.
type panelElement struct {
	name     string
	drawable Drawable
}

// Panel is a composite drawable that exclusively owns an ordered, named
// collection of children. Children are drawn bottom-to-top: index 0 first,
// visually covered by later entries. A child's position is relative to the
// panel; the panel wires itself in as the child's parent so absolute
// positions resolve through the summed chain to the root.
type Panel struct {
	Node
	Size       Size
	Background string

	elements []panelElement
}

// NewPanel creates a panel with a background rectangle as its bottom child
// (named "background"). Pass ColorNone for an invisible panel.
func NewPanel(pos Point, size Size, background string) *Panel {
	p := &Panel{}
	initPanel(p, pos, size, background)
	return p
}

// initPanel fills in a panel in place. Composites that embed Panel by value
// use this so the background child's parent pointer lands on the embedded
// node, not on a temporary.
func initPanel(p *Panel, pos Point, size Size, background string) {
	p.Position = pos
	p.Size = size
	p.Background = background
	p.Add(NewRectangle(background, Pt(0, 0), size), "background", -1)
}

// Base returns the panel's scene node.
func (p *Panel) Base() *Node {
	return &p.Node
}

// Add inserts drawable under the given name. If the name already exists, the
// new drawable replaces the old one at its current draw position (z-order is
// preserved) and the previous occupant is returned. Otherwise the drawable
// is inserted at index, where negative indices count from the top of the
// draw order: index 0 draws first (bottom), index -1 draws last (on top).
// Out-of-range indices are clamped.
func (p *Panel) Add(drawable Drawable, name string, index int) Drawable {
	drawable.Base().AttachTo(&p.Node)

	for i := range p.elements {
		if p.elements[i].name == name {
			previous := p.elements[i].drawable
			p.elements[i].drawable = drawable
			return previous
		}
	}

	if index < 0 {
		index = len(p.elements) + 1 + index
	}
	if index < 0 {
		index = 0
	}
	if index > len(p.elements) {
		index = len(p.elements)
	}

	p.elements = append(p.elements, panelElement{})
	copy(p.elements[index+1:], p.elements[index:])
	p.elements[index] = panelElement{name: name, drawable: drawable}
	return nil
}

// Get returns the drawable registered under name, or (nil, false) if the
// name is unknown.
func (p *Panel) Get(name string) (Drawable, bool) {
	for i := range p.elements {
		if p.elements[i].name == name {
			return p.elements[i].drawable, true
		}
	}
	return nil, false
}

// NumElements returns the number of children in the draw stack.
func (p *Panel) NumElements() int {
	return len(p.elements)
}

// Draw renders every child in stored order at this panel's offset from the
// caller's origin.
func (p *Panel) Draw(dst Surface, origin Point) {
	childOrigin := origin.Add(p.Position)
	for _, el := range p.elements {
		el.drawable.Draw(dst, childOrigin)
	}
}
