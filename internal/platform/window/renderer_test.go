package window

import (
	"image"
	"testing"

	"github.com/vovakirdan/catball/internal/core"
)

func TestSpriteScale(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		size   core.Vec2
		sx, sy float64
		ok     bool
	}{
		{"stretch", image.Rect(0, 0, 64, 32), core.Vec2{X: 128, Y: 16}, 2, 0.5, true},
		{"identity", image.Rect(0, 0, 10, 10), core.Vec2{X: 10, Y: 10}, 1, 1, true},
		{"zero size", image.Rect(0, 0, 10, 10), core.Vec2{X: 0, Y: 10}, 0, 0, false},
		{"empty image", image.Rect(0, 0, 0, 10), core.Vec2{X: 5, Y: 5}, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy, ok := spriteScale(tc.bounds, tc.size)
			if ok != tc.ok || sx != tc.sx || sy != tc.sy {
				t.Errorf("spriteScale = (%v, %v, %v), expected (%v, %v, %v)", sx, sy, ok, tc.sx, tc.sy, tc.ok)
			}
		})
	}
}

func TestTextScale(t *testing.T) {
	if got := textScale(glyphHeight); got != 1 {
		t.Errorf("textScale(%d) = %v, expected 1", glyphHeight, got)
	}
	if got := textScale(48); got != 3 {
		t.Errorf("textScale(48) = %v, expected 3", got)
	}
}

func TestTextBounds(t *testing.T) {
	tests := []struct {
		text string
		w, h int
	}{
		{"Score: 12", 9 * glyphWidth, glyphHeight},
		{"", glyphWidth, glyphHeight},
		{"·●", 2 * glyphWidth, glyphHeight},
	}
	for _, tc := range tests {
		w, h := textBounds(tc.text)
		if w != tc.w || h != tc.h {
			t.Errorf("textBounds(%q) = %dx%d, expected %dx%d", tc.text, w, h, tc.w, tc.h)
		}
	}
}
