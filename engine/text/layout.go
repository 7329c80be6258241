package text

import (
	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx/renderer2d"
)

// Quad is one positioned glyph in pixel space, top-left origin.
type Quad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
}

// walk visits each rune of s with the pen position of its line's baseline.
// Runes missing from the atlas advance by a space.
func walk(fa *FontAtlas, x, y float32, s string, visit func(g Glyph, penX, baseY float32)) (maxX, bottom float32) {
	penX, baseY := x, y+fa.Ascent
	maxX = x
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			maxX = max(maxX, penX)
			penX = x
			baseY += fa.LineHeight()
			prev = -1
			continue
		}
		g, ok := fa.Glyphs[r]
		if !ok {
			g, ok = fa.Glyphs[' ']
			if !ok {
				prev = -1
				continue
			}
		}
		if prev >= 0 {
			penX += fa.Kern(prev, r)
		}
		visit(g, penX, baseY)
		penX += g.Advance
		prev = r
	}
	return max(maxX, penX), baseY - fa.Ascent + fa.LineHeight()
}

// MeasureText returns the size of the box s occupies.
func MeasureText(fa *FontAtlas, s string) (width, height float32) {
	maxX, bottom := walk(fa, 0, 0, s, func(Glyph, float32, float32) {})
	return maxX, bottom
}

// Layout positions the glyphs of s with the top-left of the first line at
// (x, y). Blank glyphs produce no quad.
func Layout(fa *FontAtlas, x, y float32, s string) []Quad {
	var quads []Quad
	walk(fa, x, y, s, func(g Glyph, penX, baseY float32) {
		if g.W <= 0 || g.H <= 0 {
			return
		}
		quads = append(quads, Quad{
			X: penX + g.BearingX, Y: baseY - g.BearingY,
			W: float32(g.W), H: float32(g.H),
			U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
		})
	})
	return quads
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(r2d *renderer2d.Renderer2D, fa *FontAtlas, x, y float32, s string, color colors.Color) {
	for _, q := range Layout(fa, x, y, s) {
		r2d.DrawTexturedQuadUV(q.X, q.Y, q.W, q.H, fa.Texture, color, q.U0, q.V0, q.U1, q.V1)
	}
}
