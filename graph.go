package maple

import "fmt"

// Plot marker square edge length in pixels.
const markerSize = 10.0

// Margins is the space reserved around a graph's plot viewport for axis
// lines, labels, and the title.
type Margins struct {
	Left, Bottom, Right, Top float64
}

// Graph is a composite panel that plots datasets as markers and polylines.
// It owns the data-domain-to-pixel transform for its plot sub-panel and
// clips polylines against the plot viewport. In auto mode the visible
// domain and range track the union of all attached datasets' bounds,
// recomputed on every mutation of the dataset collection (never during
// Draw).
type Graph struct {
	Panel
	Title      string
	TitleColor string
	AxisColor  string
	LabelColor string

	// VisibleDomain and VisibleRange are the data-space rectangle currently
	// mapped onto the plot viewport.
	VisibleDomain Range
	VisibleRange  Range

	margins  Margins
	plot     *Panel
	datasets []*Dataset

	auto        bool
	hasFixed    bool
	fixedDomain Range
	fixedRange  Range
}

// NewGraph creates a graph in auto-bounds mode: the visible window follows
// the attached data.
func NewGraph(title string, pos Point, size Size, margins Margins) *Graph {
	g := newGraph(title, pos, size, margins)
	g.auto = true
	g.VisibleDomain = Range{Min: 0, Max: 1}
	g.VisibleRange = Range{Min: 0, Max: 1}
	return g
}

// NewFixedGraph creates a graph with a fixed visible window. Auto mode can
// be toggled later with SetAuto (for example from a button observer).
func NewFixedGraph(title string, pos Point, size Size, margins Margins, domain, valueRange Range) *Graph {
	g := newGraph(title, pos, size, margins)
	g.hasFixed = true
	g.fixedDomain = domain
	g.fixedRange = valueRange
	g.VisibleDomain = domain
	g.VisibleRange = valueRange
	return g
}

func newGraph(title string, pos Point, size Size, margins Margins) *Graph {
	g := &Graph{
		Title:      title,
		TitleColor: "red",
		AxisColor:  "black",
		LabelColor: "black",
		margins:    margins,
	}
	initPanel(&g.Panel, pos, size, "yellow")
	g.designer()
	return g
}

// designer builds the graph's static children: the plot sub-panel, the two
// axis lines, and the title.
func (g *Graph) designer() {
	left := g.margins.Left
	right := g.Size.Width - g.margins.Right
	top := g.margins.Top
	bottom := g.Size.Height - g.margins.Bottom

	g.plot = NewPanel(Pt(left, top), Sz(right-left, bottom-top), g.Background)
	g.Add(g.plot, "plot", -1)

	g.Add(NewLine(g.AxisColor, Pt(left, top), Pt(left, bottom)), "left axis", -1)
	g.Add(NewLine(g.AxisColor, Pt(left, bottom), Pt(right, bottom)), "bottom axis", -1)

	title := NewTextBox(g.Title, g.TitleColor, Pt(g.Size.Width/2, g.margins.Top/2), "green")
	title.HAlign = AlignCenter
	title.VAlign = AlignMiddle
	g.Add(title, "title", -1)
}

// SetColors restyles the graph and the static children designer built.
func (g *Graph) SetColors(background, axis, label, title string) {
	g.Background = background
	g.AxisColor = axis
	g.LabelColor = label
	g.TitleColor = title
	if bg, ok := g.Get("background"); ok {
		bg.(*Rectangle).Color = background
	}
	if bg, ok := g.plot.Get("background"); ok {
		bg.(*Rectangle).Color = background
	}
	if l, ok := g.Get("left axis"); ok {
		l.(*Line).Color = axis
	}
	if l, ok := g.Get("bottom axis"); ok {
		l.(*Line).Color = axis
	}
	if t, ok := g.Get("title"); ok {
		t.(*TextBox).TextColor = title
		t.(*TextBox).Background = ColorNone
	}
}

// Plot returns the plot sub-panel (the viewport datasets are mapped onto).
func (g *Graph) Plot() *Panel {
	return g.plot
}

// Datasets returns the attached datasets.
func (g *Graph) Datasets() []*Dataset {
	return g.datasets
}

// AddDataset attaches a dataset; in auto mode the visible window is
// recomputed immediately.
func (g *Graph) AddDataset(ds *Dataset) {
	g.datasets = append(g.datasets, ds)
	if g.auto {
		g.ResizeBounds()
	}
}

// SetDatasets replaces all attached datasets; in auto mode the visible
// window is recomputed immediately.
func (g *Graph) SetDatasets(datasets []*Dataset) {
	g.datasets = datasets
	if g.auto {
		g.ResizeBounds()
	}
}

// ResizeBounds recomputes the visible window as the union of every attached
// dataset's bounds. No-op with no datasets attached; panics (via Dataset) if
// any attached dataset is empty.
func (g *Graph) ResizeBounds() {
	if len(g.datasets) == 0 {
		return
	}
	domain := g.datasets[0].XBounds()
	valueRange := g.datasets[0].YBounds()
	for _, ds := range g.datasets[1:] {
		domain = domain.Union(ds.XBounds())
		valueRange = valueRange.Union(ds.YBounds())
	}
	g.VisibleDomain = domain
	g.VisibleRange = valueRange
}

// AutoBounds reports whether the visible window follows the data.
func (g *Graph) AutoBounds() bool {
	return g.auto
}

// SetAuto switches between auto and fixed bounds. Only graphs constructed
// with fixed bounds can toggle; entering auto mode recomputes from the data,
// leaving it restores the construction-time window.
func (g *Graph) SetAuto(auto bool) {
	if !g.hasFixed {
		return
	}
	g.auto = auto
	if auto {
		g.ResizeBounds()
	} else {
		g.VisibleDomain = g.fixedDomain
		g.VisibleRange = g.fixedRange
	}
}

// ToggleAuto is an ObserverFunc that flips auto mode; wire it to a button.
func (g *Graph) ToggleAuto(source any, value any) {
	g.SetAuto(!g.auto)
}

// Draw renders the panel chrome, then the datasets inside the plot viewport.
func (g *Graph) Draw(dst Surface, origin Point) {
	g.Panel.Draw(dst, origin)
	g.drawPlot(dst, origin.Add(g.Position).Add(g.plot.Position))
}

// drawPlot draws axis labels, markers, and clipped polylines. origin is the
// absolute top-left corner of the plot viewport.
func (g *Graph) drawPlot(dst Surface, origin Point) {
	width := g.plot.Size.Width
	height := g.plot.Size.Height

	g.drawAxisLabels(dst, origin)

	viewport := Rect{X: origin.X, Y: origin.Y, Width: width, Height: height}

	for _, ds := range g.datasets {
		points := transformSamples(ds.Samples, g.VisibleDomain, g.VisibleRange, g.plot.Size)

		if ds.MarkerColor != ColorNone {
			for i, s := range ds.Samples {
				if g.VisibleDomain.Min <= s.X && s.X <= g.VisibleDomain.Max &&
					g.VisibleRange.Min <= s.Y && s.Y <= g.VisibleRange.Max {
					corner := points[i].Add(origin).Add(Pt(-markerSize/2, -markerSize/2))
					dst.FillRect(corner, Sz(markerSize, markerSize), ds.MarkerColor)
				}
			}
		}

		if len(points) == 0 || ds.LineColor == ColorNone {
			continue
		}
		start := points[0].Add(origin)
		for _, p := range points[1:] {
			end := p.Add(origin)
			if !viewport.ContainsLoose(start.X, start.Y) {
				start = boundX(start, end, viewport)
				start = boundY(start, end, viewport)
			}
			if !viewport.ContainsLoose(end.X, end.Y) {
				end = boundX(end, start, viewport)
				end = boundY(end, start, viewport)
			}
			dst.StrokeLine(start, end, ds.LineColor)
			// The clipped endpoint carries forward so a clipping adjustment
			// never propagates past the affected segment.
			start = end
		}
	}
}

// drawAxisLabels labels the corners of the visible window.
func (g *Graph) drawAxisLabels(dst Surface, origin Point) {
	width := g.plot.Size.Width
	height := g.plot.Size.Height

	upperY := NewTextBox(fmt.Sprintf("y=%d", int(g.VisibleRange.Max)), g.LabelColor, Pt(0, 0), ColorNone)
	upperY.HAlign = AlignRight
	upperY.Draw(dst, origin)

	lowerY := NewTextBox(fmt.Sprintf("y=%d", int(g.VisibleRange.Min)), g.LabelColor, Pt(0, height), ColorNone)
	lowerY.HAlign = AlignRight
	lowerY.VAlign = AlignBottom
	lowerY.Draw(dst, origin)

	upperX := NewTextBox(fmt.Sprintf("x=%v", g.VisibleDomain.Max), g.LabelColor, Pt(width, height), ColorNone)
	upperX.Draw(dst, origin)

	lowerX := NewTextBox(fmt.Sprintf("x=%v", g.VisibleDomain.Min), g.LabelColor, Pt(0, height), ColorNone)
	lowerX.Draw(dst, origin)
}

// --- Transform & clipping ---

// transformSamples maps data-space samples onto plot-relative pixel points:
// x is scaled across the viewport width, y is flipped because pixel rows
// grow downward while the data range grows upward. Points outside the
// visible window transform to pixels outside the viewport; the clipper
// deals with those.
func transformSamples(samples []Sample, domain, valueRange Range, size Size) []Point {
	points := make([]Point, len(samples))
	for i, s := range samples {
		px := size.Width * (s.X - domain.Min) / domain.Span()
		py := size.Height * (1 - (s.Y-valueRange.Min)/valueRange.Span())
		points[i] = Pt(px, py)
	}
	return points
}

// boundX moves p1 to the segment's intersection with the nearest vertical
// viewport edge, keeping it on the line through p2. A vertical segment is
// returned unchanged (it can only be clipped in y).
func boundX(p1, p2 Point, viewport Rect) Point {
	if p1.X == p2.X {
		return p1
	}
	slope := (p2.Y - p1.Y) / (p2.X - p1.X)
	x := clamp(p1.X, viewport.X, viewport.X+viewport.Width)
	return Pt(x, slope*(x-p2.X)+p2.Y)
}

// boundY moves p1 to the segment's intersection with the nearest horizontal
// viewport edge. A horizontal segment (slope 0) is returned unchanged since
// its y can never re-enter the viewport by moving along x.
//
// Together boundX-then-boundY is a deliberate approximation rather than a
// full polygon clip: it is exact while at most one coordinate is out of
// range, and can mis-place a segment exiting through a corner.
func boundY(p1, p2 Point, viewport Rect) Point {
	y := clamp(p1.Y, viewport.Y, viewport.Y+viewport.Height)
	if p1.X == p2.X {
		return Pt(p1.X, y)
	}
	slope := (p2.Y - p1.Y) / (p2.X - p1.X)
	if slope == 0 {
		return p1
	}
	return Pt((y-p2.Y)/slope+p2.X, y)
}
