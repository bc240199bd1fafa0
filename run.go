package maple

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Background string // window clear color; empty means white
	ShowFPS    bool
}

// Run opens a window and drives the synchronous frame loop: every frame it
// drains the pending pointer input into dispatcher events, then redraws root
// onto the screen. It blocks until the window is closed.
//
// For full control, implement [ebiten.Game] yourself and use
// [NewImageSurface] plus [Dispatcher.Dispatch] directly.
func Run(root Drawable, disp *Dispatcher, cfg RunConfig) error {
	if cfg.Background == "" {
		cfg.Background = "white"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{root: root, disp: disp, cfg: cfg})
}

// game adapts a drawable tree and dispatcher to the ebiten.Game interface.
type game struct {
	root   Drawable
	disp   *Dispatcher
	cfg    RunConfig
	cursor Point
}

// mouseButtons maps ebiten's buttons onto the event model's identifiers.
var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	maple  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Update drains this frame's pointer input and dispatches each event
// synchronously. Move first, then presses, then releases, so a click-drag
// started this frame sees the up-to-date cursor position.
func (g *game) Update() error {
	mx, my := ebiten.CursorPosition()
	pos := Pt(float64(mx), float64(my))

	if pos != g.cursor {
		g.cursor = pos
		g.disp.Dispatch(PointerEvent{Kind: EventMove, Pos: pos})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.disp.Dispatch(PointerEvent{Kind: EventButtonDown, Pos: pos, Button: b.maple})
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			g.disp.Dispatch(PointerEvent{Kind: EventButtonUp, Pos: pos, Button: b.maple})
		}
	}
	return nil
}

// Draw clears the screen and redraws the full drawable tree top-down.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(ResolveColor(g.cfg.Background))
	g.root.Draw(NewImageSurface(screen), Pt(0, 0))

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
