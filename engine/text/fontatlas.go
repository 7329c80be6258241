package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/winkel/engine/gfx"
)

const (
	firstRune    = rune(32)
	lastRune     = rune(255)
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top in pixels
	W, H     int     // bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// FontAtlas is one font rasterized at one pixel size: white glyphs with alpha
// coverage, uploaded as a single RGBA texture.
type FontAtlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Kerning                  map[[2]rune]float32
	Texture                  gfx.Texture
	AtlasW, AtlasH           int
}

// LineHeight is the distance between two baselines.
func (fa *FontAtlas) LineHeight() float32 { return fa.Ascent - fa.Descent + fa.LineGap }

// Kern returns the extra advance between a and b.
func (fa *FontAtlas) Kern(a, b rune) float32 { return fa.Kerning[[2]rune{a, b}] }

type measured struct {
	r      rune
	w, h   int
	adv    float32
	bx, by int
}

// LoadAtlas parses a TrueType/OpenType font and rasterizes runes 32..255 at
// sizePx into a texture created on dev.
func LoadAtlas(dev gfx.Device, data []byte, sizePx float32) (*FontAtlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %v: must be positive", sizePx)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent
	if lineGap < 0 {
		lineGap = 0
	}

	glyphs := make([]measured, 0, lastRune-firstRune+1)
	for r := firstRune; r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		minX, minY := br.Min.X.Floor(), br.Min.Y.Floor()
		maxX, maxY := br.Max.X.Ceil(), br.Max.Y.Ceil()
		glyphs = append(glyphs, measured{
			r:   r,
			w:   maxX - minX,
			h:   maxY - minY,
			adv: float32(adv.Round()),
			bx:  minX,
			by:  -minY,
		})
	}

	size, pos, err := packShelves(glyphs)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	fa := &FontAtlas{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:  make(map[rune]Glyph, len(glyphs)),
		Kerning: make(map[[2]rune]float32),
		AtlasW:  size, AtlasH: size,
	}
	for _, g := range glyphs {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: float32(g.bx), BearingY: float32(g.by),
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// Dot sits on the baseline; shift so the glyph box lands at p.
			drawer.Dot = fixed.P(p.X-g.bx, p.Y+g.by)
			drawer.DrawString(string(g.r))
			s := float32(size)
			gl.U0, gl.V0 = float32(p.X)/s, float32(p.Y)/s
			gl.U1, gl.V1 = float32(p.X+g.w)/s, float32(p.Y+g.h)/s
		}
		fa.Glyphs[g.r] = gl
	}

	for _, a := range glyphs {
		for _, b := range glyphs {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				fa.Kerning[[2]rune{a.r, b.r}] = float32(dx) / 64
			}
		}
	}

	tex, err := dev.CreateTexture(gfx.TextureDesc{
		Width: size, Height: size,
		Format:    gfx.TextureRGBA8,
		Pixels:    dst.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload atlas: %w", err)
	}
	fa.Texture = tex
	return fa, nil
}

// packShelves places every non-empty glyph into rows of a square atlas,
// doubling the side until everything fits.
func packShelves(glyphs []measured) (int, map[rune]image.Point, error) {
	for size := atlasMinSize; size <= atlasMaxSize; size *= 2 {
		pos := make(map[rune]image.Point, len(glyphs))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, g := range glyphs {
			if g.w <= 0 || g.h <= 0 {
				continue
			}
			if g.w+2*atlasPadding > size {
				fits = false
				break
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			return size, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
}
