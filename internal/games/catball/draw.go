package catball

import (
	"image/color"

	"github.com/vovakirdan/catball/internal/core"
)

// Sprite identifies one of the four game images.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteBall
	SpritePawLeft
	SpritePawRight
)

// String returns the sprite's asset name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBall:
		return "ball"
	case SpritePawLeft:
		return "paw_left"
	case SpritePawRight:
		return "paw_right"
	default:
		return "unknown"
	}
}

// Colors used by the frame loop.
var (
	ClearColor = color.RGBA{R: 0xff, G: 0x6d, B: 0xc2, A: 0xff} // pink
	TextColor  = color.RGBA{A: 0xff}                            // black
)

// Renderer receives draw requests in screen coordinates.
type Renderer interface {
	// Clear fills the whole screen.
	Clear(c color.Color)

	// DrawSprite draws a sprite with its top-left corner at pos, stretched to size.
	DrawSprite(s Sprite, pos, size core.Vec2)

	// DrawText draws a single line of text. pos is the left end of the
	// baseline and size the font size, both in screen units.
	DrawText(text string, pos core.Vec2, size float64, c color.Color)
}

// OpKind tells which Renderer method a DrawOp records.
type OpKind int

const (
	OpClear OpKind = iota
	OpSprite
	OpText
)

// DrawOp is one recorded draw request.
type DrawOp struct {
	Kind   OpKind
	Sprite Sprite
	Pos    core.Vec2
	Size   core.Vec2 // sprite size; X holds the font size for text
	Text   string
	Color  color.Color
}

// DrawList is a Renderer that records requests for later replay.
// Hosts that separate update from draw fill it during the frame and replay
// it when presenting.
type DrawList struct {
	Ops []DrawOp
}

// Clear records a clear request.
func (d *DrawList) Clear(c color.Color) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpClear, Color: c})
}

// DrawSprite records a sprite request.
func (d *DrawList) DrawSprite(s Sprite, pos, size core.Vec2) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpSprite, Sprite: s, Pos: pos, Size: size})
}

// DrawText records a text request.
func (d *DrawList) DrawText(text string, pos core.Vec2, size float64, c color.Color) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpText, Text: text, Pos: pos, Size: core.Vec2{X: size, Y: size}, Color: c})
}

// Reset empties the list, keeping its capacity.
func (d *DrawList) Reset() {
	d.Ops = d.Ops[:0]
}

// Replay forwards every recorded request to r in recording order.
func (d *DrawList) Replay(r Renderer) {
	for _, op := range d.Ops {
		switch op.Kind {
		case OpClear:
			r.Clear(op.Color)
		case OpSprite:
			r.DrawSprite(op.Sprite, op.Pos, op.Size)
		case OpText:
			r.DrawText(op.Text, op.Pos, op.Size.X, op.Color)
		}
	}
}

// Sprites returns the sprites drawn, in order. Useful for asserting draw order.
func (d *DrawList) Sprites() []Sprite {
	var out []Sprite
	for _, op := range d.Ops {
		if op.Kind == OpSprite {
			out = append(out, op.Sprite)
		}
	}
	return out
}
