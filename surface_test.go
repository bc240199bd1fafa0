package maple

// recordSurface is an in-memory Surface that records every primitive the
// core emits, for headless draw tests. Text measures as 7x13 per rune
// (basicfont proportions) so alignment math is predictable.
type recordSurface struct {
	ops []surfaceOp
}

type surfaceOp struct {
	kind     string // "rect", "line", or "text"
	pos      Point
	size     Size
	from, to Point
	text     string
	color    string
}

func (s *recordSurface) FillRect(pos Point, size Size, color string) {
	s.ops = append(s.ops, surfaceOp{kind: "rect", pos: pos, size: size, color: color})
}

func (s *recordSurface) StrokeLine(from, to Point, color string) {
	s.ops = append(s.ops, surfaceOp{kind: "line", from: from, to: to, color: color})
}

func (s *recordSurface) DrawText(text string, pos Point, color string) {
	s.ops = append(s.ops, surfaceOp{kind: "text", text: text, pos: pos, color: color})
}

func (s *recordSurface) MeasureText(text string) Size {
	return Sz(float64(7*len([]rune(text))), 13)
}

// filter returns the recorded ops of one kind, in emission order.
func (s *recordSurface) filter(kind string) []surfaceOp {
	var out []surfaceOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}
