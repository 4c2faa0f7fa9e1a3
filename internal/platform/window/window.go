// Package window runs the spike runner in a desktop window using Ebitengine.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/game"
	"github.com/vovakirdan/spike-runner/internal/sched"
)

// Default window size; the canvas is scaled to fit.
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// jumpKeys all trigger the jump/confirm input.
var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Options configures the window frontend.
type Options struct {
	Config config.RunnerConfig
	Seed   int64 // 0 picks a time-based seed
	Logger *log.Logger
}

// Game implements ebiten.Game around one session.
type Game struct {
	session *game.Session
	clock   *sched.Clock
	step    time.Duration
}

// NewGame creates a window game with a fresh session on a virtual clock.
func NewGame(opts Options) (*Game, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	clock := sched.NewClock()
	session, err := game.NewSession(opts.Config, clock, game.Options{
		Seed:   opts.Seed,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Game{
		session: session,
		clock:   clock,
		step:    opts.Config.TickInterval(),
	}, nil
}

// Update reads input and advances the clock by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.JumpOrConfirm()
			break
		}
	}
	g.clock.Advance(g.step)
	return nil
}

// Draw renders the scene scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(newImageSink(screen, g.session.Canvas()))

	if g.session.State() == game.StateStopped {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, float32(w)/2-130, float32(h)/2-30, 260, 60, core.ColorSpikes.RGBA(), false)
		ebitenutil.DebugPrintAt(screen, "CRASHED", w/2-21, h/2-22)
		ebitenutil.DebugPrintAt(screen, "press Space, Up or W to restart", w/2-93, h/2)
	}
}

// Layout uses the window size as the logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("Spike Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Config.FPS)

	g.session.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// imageSink draws world rectangles onto an ebiten image, scaling the canvas
// to the image bounds.
type imageSink struct {
	dst    *ebiten.Image
	canvas core.Rect
	w, h   int
}

func newImageSink(dst *ebiten.Image, canvas core.Rect) *imageSink {
	b := dst.Bounds()
	return &imageSink{dst: dst, canvas: canvas, w: b.Dx(), h: b.Dy()}
}

// Draw implements game.Renderer.
func (s *imageSink) Draw(r core.Rect, c core.Color) {
	x, y, w, h := toScreen(r, s.canvas, s.w, s.h)
	vector.DrawFilledRect(s.dst, x, y, w, h, c.RGBA(), false)
}

// toScreen maps a world rectangle onto a screen of width x height pixels
// showing canvas.
func toScreen(r, canvas core.Rect, width, height int) (x, y, w, h float32) {
	sx := float64(width) / canvas.W
	sy := float64(height) / canvas.H
	return float32((r.X - canvas.X) * sx),
		float32((r.Y - canvas.Y) * sy),
		float32(r.W * sx),
		float32(r.H * sy)
}
