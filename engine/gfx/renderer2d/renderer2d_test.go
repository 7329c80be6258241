package renderer2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx/gfxtest"
)

func newTestRenderer(t *testing.T, maxQuads int) (*Renderer2D, *gfxtest.Device) {
	t.Helper()
	dev := &gfxtest.Device{}
	rd, err := New(dev, "vert", "frag", maxQuads)
	require.NoError(t, err)
	return rd, dev
}

func TestNewFailsWithoutPipeline(t *testing.T) {
	_, err := New(&gfxtest.Device{FailPipeline: true}, "vert", "frag", 4)
	require.Error(t, err)
}

func TestOrthoMapsCorners(t *testing.T) {
	m := Ortho(200, 100)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	cx, cy := apply(0, 0)
	assert.InDelta(t, -1, cx, 1e-6)
	assert.InDelta(t, 1, cy, 1e-6)
	cx, cy = apply(200, 100)
	assert.InDelta(t, 1, cx, 1e-6)
	assert.InDelta(t, -1, cy, 1e-6)
}

func TestDrawRectEmitsOneQuad(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	rd.BeginScene(Ortho(100, 100))
	rd.DrawRect(10, 20, 30, 40, colors.Red, 5)
	rd.EndScene()

	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.Equal(t, 6, d.Cmd.IndexCount)
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, d.Indices)
	assert.Equal(t, Ortho(100, 100), d.Cmd.Uniforms["uVP"])
	assert.Len(t, d.Cmd.Samplers, maxTexSlots)

	// bottom-right vertex
	v := d.Vertices[3*vStride : 4*vStride]
	assert.Equal(t, []float32{
		40, 60,
		1, 0, 0, 1,
		1, 1,
		0,
		10, 20, 30, 40,
		5,
	}, v)

	st := rd.Stats()
	assert.Equal(t, 1, st.DrawCalls)
	assert.Equal(t, 1, st.QuadCount)
	assert.Equal(t, 4, st.TotalVertexCount())
	assert.Equal(t, 6, st.TotalIndexCount())
}

func TestInvisibleQuadsAreSkipped(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	rd.BeginScene(Ortho(100, 100))
	rd.DrawRect(0, 0, 10, 10, colors.Transparent, 0)
	rd.DrawRect(0, 0, 0, 10, colors.Red, 0)
	rd.EndScene()
	assert.Empty(t, dev.Draws)
	assert.Zero(t, rd.Stats().QuadCount)
}

func TestFlushesWhenBatchIsFull(t *testing.T) {
	rd, dev := newTestRenderer(t, 2)
	rd.BeginScene(Ortho(100, 100))
	for i := 0; i < 5; i++ {
		rd.DrawRect(float32(i), 0, 1, 1, colors.Blue, 0)
	}
	rd.EndScene()

	require.Len(t, dev.Draws, 3)
	assert.Equal(t, 12, dev.Draws[0].Cmd.IndexCount)
	assert.Equal(t, 12, dev.Draws[1].Cmd.IndexCount)
	assert.Equal(t, 6, dev.Draws[2].Cmd.IndexCount)
	assert.Equal(t, 3, rd.Stats().DrawCalls)
	assert.Equal(t, 5, rd.Stats().QuadCount)
}

func TestTexturedQuadsShareSlots(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	tex, err := dev.CreateTexture(gfxtest.RGBA(2, 2))
	require.NoError(t, err)

	rd.BeginScene(Ortho(100, 100))
	rd.DrawTexturedQuadUV(0, 0, 10, 10, tex, colors.White, 0, 0, 0.5, 0.5)
	rd.DrawTexturedQuadUV(10, 0, 10, 10, tex, colors.White, 0.5, 0, 1, 0.5)
	rd.DrawRect(0, 0, 5, 5, colors.Green, 0)
	rd.EndScene()

	require.Len(t, dev.Draws, 1)
	d := dev.Draws[0]
	assert.Same(t, tex, d.Cmd.Samplers["uTex[1]"])
	assert.Same(t, dev.Textures[0], d.Cmd.Samplers["uTex[0]"])
	// texIndex of first and second quad, then the white rect
	assert.Equal(t, float32(1), d.Vertices[8])
	assert.Equal(t, float32(1), d.Vertices[4*vStride+8])
	assert.Equal(t, float32(0), d.Vertices[8*vStride+8])
	assert.Equal(t, 2, rd.Stats().TextureCount)
}

func TestFlushesWhenTextureSlotsRunOut(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	rd.BeginScene(Ortho(100, 100))
	for i := 0; i < maxTexSlots; i++ {
		tex, err := dev.CreateTexture(gfxtest.RGBA(1, 1))
		require.NoError(t, err)
		rd.DrawTexturedQuadUV(0, 0, 1, 1, tex, colors.White, 0, 0, 1, 1)
	}
	rd.EndScene()

	// white occupies slot 0, so the eighth texture starts a new batch
	require.Len(t, dev.Draws, 2)
	assert.Equal(t, 7*6, dev.Draws[0].Cmd.IndexCount)
	assert.Equal(t, 6, dev.Draws[1].Cmd.IndexCount)
	assert.Equal(t, float32(1), dev.Draws[1].Vertices[8])
}

func TestBeginSceneResetsStats(t *testing.T) {
	rd, _ := newTestRenderer(t, 4)
	rd.BeginScene(Ortho(10, 10))
	rd.DrawRect(0, 0, 1, 1, colors.Red, 0)
	rd.EndScene()
	rd.BeginScene(Ortho(10, 10))
	assert.Equal(t, Statistics{}, rd.Stats())
}
