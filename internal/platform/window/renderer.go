package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/catball/internal/assets"
	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// maxCachedTexts bounds the rendered text cache. Score labels change once per
// bounce, so the cache is flushed rather than tracked per entry.
const maxCachedTexts = 64

// Renderer is a catball.Renderer drawing onto an ebiten image.
type Renderer struct {
	target  *ebiten.Image
	sprites map[catball.Sprite]*ebiten.Image
	texts   map[string]*ebiten.Image
}

// NewRenderer uploads the sprite images to the GPU.
func NewRenderer(set *assets.Set) *Renderer {
	sprites := map[catball.Sprite]*ebiten.Image{
		catball.SpriteBackground: ebiten.NewImageFromImage(set.Background),
		catball.SpriteBall:       ebiten.NewImageFromImage(set.Ball),
		catball.SpritePawLeft:    ebiten.NewImageFromImage(set.PawLeft),
		catball.SpritePawRight:   ebiten.NewImageFromImage(set.PawRight),
	}
	return &Renderer{
		sprites: sprites,
		texts:   make(map[string]*ebiten.Image),
	}
}

// SetTarget selects the image subsequent draws go to.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Clear fills the target with c.
func (r *Renderer) Clear(c color.Color) {
	r.target.Fill(c)
}

// DrawSprite stretches the sprite image over the rectangle at pos.
func (r *Renderer) DrawSprite(s catball.Sprite, pos, size core.Vec2) {
	img, ok := r.sprites[s]
	if !ok {
		return
	}
	sx, sy, ok := spriteScale(img.Bounds(), size)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// DrawText draws text with its baseline at pos.y, scaled from the debug font.
func (r *Renderer) DrawText(text string, pos core.Vec2, size float64, c color.Color) {
	if text == "" || size <= 0 {
		return
	}
	img := r.textImage(text)
	scale := textScale(size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y-size)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// textImage returns text rendered in white on a transparent image.
func (r *Renderer) textImage(text string) *ebiten.Image {
	if img, ok := r.texts[text]; ok {
		return img
	}
	if len(r.texts) >= maxCachedTexts {
		for k, img := range r.texts {
			img.Deallocate()
			delete(r.texts, k)
		}
	}
	img := ebiten.NewImage(textBounds(text))
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	r.texts[text] = img
	return img
}

// spriteScale returns the factors stretching an image of the given bounds to
// size. It reports false when nothing would be visible.
func spriteScale(bounds image.Rectangle, size core.Vec2) (sx, sy float64, ok bool) {
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || size.X <= 0 || size.Y <= 0 {
		return 0, 0, false
	}
	return size.X / float64(w), size.Y / float64(h), true
}

// textScale maps a font size in screen units to a debug font scale.
func textScale(size float64) float64 {
	return size / glyphHeight
}

// textBounds returns the image size needed for a single line of debug text.
func textBounds(text string) (w, h int) {
	return core.Max(len([]rune(text)), 1) * glyphWidth, glyphHeight
}
