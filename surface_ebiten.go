package maple

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// defaultFace is the face used for all text drawing. Shared package-wide;
// maple is single-threaded (one frame loop), so no locking.
var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// ImageSurface renders maple draw primitives onto an ebiten image. It is the
// production Surface; tests use an in-memory fake instead.
type ImageSurface struct {
	dst *ebiten.Image
}

// NewImageSurface wraps an ebiten image (typically the frame's screen) as a
// drawing surface.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// FillRect draws a filled axis-aligned rectangle.
func (s *ImageSurface) FillRect(pos Point, size Size, colorName string) {
	vector.DrawFilledRect(s.dst,
		float32(pos.X), float32(pos.Y),
		float32(size.Width), float32(size.Height),
		ResolveColor(colorName), false)
}

// StrokeLine draws a one-pixel line segment between two absolute points.
func (s *ImageSurface) StrokeLine(from, to Point, colorName string) {
	vector.StrokeLine(s.dst,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		1, ResolveColor(colorName), false)
}

// DrawText blits one line of text with its top-left corner at pos.
func (s *ImageSurface) DrawText(str string, pos Point, colorName string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(ResolveColor(colorName))
	text.Draw(s.dst, str, defaultFace, op)
}

// MeasureText returns the pixel size one line of text will occupy.
func (s *ImageSurface) MeasureText(str string) Size {
	metrics := defaultFace.Metrics()
	w, h := text.Measure(str, defaultFace, metrics.HAscent+metrics.HDescent+metrics.HLineGap)
	return Sz(w, h)
}

// ResolveColor maps a color string to a concrete color: any SVG 1.1 color
// name ("black", "steelblue", ...) or a "#rrggbb" hex literal. Unknown
// strings resolve to magenta so a typo is visible instead of silent.
func ResolveColor(name string) color.Color {
	if len(name) == 7 && name[0] == '#' {
		r, errR := strconv.ParseUint(name[1:3], 16, 8)
		g, errG := strconv.ParseUint(name[3:5], 16, 8)
		b, errB := strconv.ParseUint(name[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Magenta
}
