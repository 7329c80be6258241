package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx/gfxtest"
	"github.com/hubastard/winkel/engine/gfx/renderer2d"
)

// fixedAtlas is a hand-built monospace atlas: every glyph is 8x10, advances 10.
func fixedAtlas() *FontAtlas {
	fa := &FontAtlas{
		SizePx: 12, Ascent: 10, Descent: -2, LineGap: 1,
		Glyphs:  map[rune]Glyph{' ': {Rune: ' ', Advance: 10}},
		Kerning: map[[2]rune]float32{{'A', 'V'}: -3},
	}
	for _, r := range "AVHi" {
		fa.Glyphs[r] = Glyph{Rune: r, Advance: 10, BearingX: 1, BearingY: 9, W: 8, H: 10, U1: 0.5, V1: 0.5}
	}
	return fa
}

func TestMeasureText(t *testing.T) {
	fa := fixedAtlas()
	w, h := MeasureText(fa, "HH")
	assert.Equal(t, float32(20), w)
	assert.Equal(t, float32(13), h)

	w, _ = MeasureText(fa, "AV")
	assert.Equal(t, float32(17), w, "kerning pulls V left")

	w, h = MeasureText(fa, "HHH\nH")
	assert.Equal(t, float32(30), w)
	assert.Equal(t, float32(26), h)

	w, h = MeasureText(fa, "")
	assert.Zero(t, w)
	assert.Equal(t, float32(13), h)
}

func TestLayoutPositionsGlyphs(t *testing.T) {
	fa := fixedAtlas()
	quads := Layout(fa, 100, 50, "H i\nA")
	require.Len(t, quads, 3)
	assert.Equal(t, Quad{X: 101, Y: 51, W: 8, H: 10, U1: 0.5, V1: 0.5}, quads[0])
	assert.Equal(t, float32(121), quads[1].X, "space advances the pen")
	assert.Equal(t, float32(101), quads[2].X)
	assert.Equal(t, float32(64), quads[2].Y)
}

func TestLayoutUnknownRuneAdvancesLikeSpace(t *testing.T) {
	fa := fixedAtlas()
	quads := Layout(fa, 0, 0, "H€H")
	require.Len(t, quads, 2)
	assert.Equal(t, float32(21), quads[1].X)
}

func TestLoadAtlas(t *testing.T) {
	dev := &gfxtest.Device{}
	fa, err := LoadAtlas(dev, goregular.TTF, 20)
	require.NoError(t, err)

	assert.Greater(t, fa.Ascent, float32(0))
	assert.LessOrEqual(t, fa.Descent, float32(0))
	assert.Equal(t, fa.AtlasW, fa.AtlasH)
	require.Len(t, dev.Textures, 1)
	tex := dev.Textures[0]
	assert.Same(t, tex, fa.Texture)
	assert.Len(t, tex.Desc.Pixels, fa.AtlasW*fa.AtlasH*4)

	h, ok := fa.Glyphs['H']
	require.True(t, ok)
	assert.Positive(t, h.W)
	assert.Positive(t, h.H)
	assert.Positive(t, h.Advance)
	assert.True(t, h.U0 < h.U1 && h.V0 < h.V1)
	assert.LessOrEqual(t, h.U1, float32(1))
	assert.LessOrEqual(t, h.V1, float32(1))

	sp := fa.Glyphs[' ']
	assert.Zero(t, sp.W)
	assert.Positive(t, sp.Advance)

	var covered bool
	for i := 3; i < len(tex.Desc.Pixels); i += 4 {
		if tex.Desc.Pixels[i] != 0 {
			covered = true
			break
		}
	}
	assert.True(t, covered, "glyphs rasterized into the atlas")
}

func TestLoadAtlasErrors(t *testing.T) {
	_, err := LoadAtlas(&gfxtest.Device{}, goregular.TTF, 0)
	require.Error(t, err)
	_, err = LoadAtlas(&gfxtest.Device{}, []byte("not a font"), 12)
	require.ErrorContains(t, err, "parse font")
}

func TestCacheLoadsOncePerSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0o644))

	dev := &gfxtest.Device{}
	c := NewCache(dev, dir)

	a, loaded, err := c.Font("Go-Regular.ttf", 16)
	require.NoError(t, err)
	assert.True(t, loaded)

	b, loaded, err := c.Font("Go-Regular.ttf", 16)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Same(t, a, b)

	_, _, err = c.Font("Go-Regular.ttf", 24)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Len(t, dev.Textures, 2)

	c.Close()
	assert.Zero(t, c.Len())
}

func TestCacheRemembersFailures(t *testing.T) {
	c := NewCache(&gfxtest.Device{}, t.TempDir())
	_, loaded, err := c.Font("missing.ttf", 12)
	require.Error(t, err)
	assert.True(t, loaded)

	_, loaded, err = c.Font("missing.ttf", 12)
	require.Error(t, err)
	assert.False(t, loaded)
}

func TestDrawTextBatchesGlyphs(t *testing.T) {
	dev := &gfxtest.Device{}
	r2d, err := renderer2d.New(dev, "v", "f", 64)
	require.NoError(t, err)
	fa := fixedAtlas()
	fa.Texture = &gfxtest.Texture{}

	r2d.BeginScene(renderer2d.Ortho(200, 100))
	DrawText(r2d, fa, 0, 0, "Hi H", colors.Blue)
	r2d.EndScene()

	require.Len(t, dev.Draws, 1)
	assert.Equal(t, 3*6, dev.Draws[0].Cmd.IndexCount)
	assert.Same(t, fa.Texture, dev.Draws[0].Cmd.Samplers["uTex[1]"])
}

func TestCacheServesBuiltinFonts(t *testing.T) {
	dev := &gfxtest.Device{}
	c := NewCache(dev, "does-not-exist")

	a, _, err := c.Font("", 14)
	require.NoError(t, err)
	b, loaded, err := c.Font(DefaultFont, 14)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Same(t, a, b)

	_, _, err = c.Font(MonoFont, 14)
	require.NoError(t, err)
	_, _, err = c.Font(BoldFont, 14)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}
