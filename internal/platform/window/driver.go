// Package window hosts the game in a desktop window with Ebitengine.
// Touches and the left mouse button both steer the paws.
package window

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/catball/internal/assets"
	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

var _ catball.FrameDriver = (*Driver)(nil)

// ErrNoSprites is returned when the driver has no images to draw with.
var ErrNoSprites = errors.New("window driver needs sprites")

// Driver is a catball.FrameDriver presenting frames in a window.
type Driver struct {
	Title   string
	Width   int
	Height  int
	TPS     int // frames per second, 0 keeps the ebiten default of 60
	Sprites *assets.Set
	Logger  *log.Logger
}

// Run opens the window and blocks until it is closed or ctx is done.
func (d *Driver) Run(ctx context.Context, frame catball.FrameFunc) error {
	if d.Sprites == nil {
		return ErrNoSprites
	}
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}

	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if d.TPS > 0 {
		ebiten.SetTPS(d.TPS)
	}

	h := &host{
		ctx:      ctx,
		frame:    frame,
		renderer: NewRenderer(d.Sprites),
		logger:   logger,
		size:     core.Vec2{X: float64(d.Width), Y: float64(d.Height)},
	}
	logger.Info("window opened", "title", d.Title, "width", d.Width, "height", d.Height)
	return ebiten.RunGame(h)
}

// host adapts a frame function to ebiten.Game.
// Update records the frame into a draw list and Draw replays it.
type host struct {
	ctx      context.Context
	frame    catball.FrameFunc
	renderer *Renderer
	logger   *log.Logger

	size     core.Vec2
	list     catball.DrawList
	touchIDs []ebiten.TouchID
	points   []core.Vec2
	paused   bool
}

// Update runs one frame per tick.
func (h *host) Update() error {
	if h.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.paused = !h.paused
		h.logger.Debug("pause toggled", "paused", h.paused)
	}
	if h.paused {
		return nil
	}

	h.list.Reset()
	h.frame(catball.FrameInput{Screen: h.size, Pointers: h.pointers()}, &h.list)
	return nil
}

// pointers returns every touch plus the mouse while its left button is held.
func (h *host) pointers() []core.Vec2 {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	h.points = h.points[:0]
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.points = append(h.points, core.Vec2{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.points = append(h.points, core.Vec2{X: float64(x), Y: float64(y)})
	}
	return h.points
}

// Draw replays the last recorded frame.
func (h *host) Draw(screen *ebiten.Image) {
	h.renderer.SetTarget(screen)
	h.list.Replay(h.renderer)
	if h.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED  (p to resume, esc to quit)", 8, 8)
	}
}

// Layout uses the window size as the screen, one unit per pixel.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Vec2{X: float64(outsideWidth), Y: float64(outsideHeight)}
	if size != h.size {
		h.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
		h.size = size
	}
	return outsideWidth, outsideHeight
}
