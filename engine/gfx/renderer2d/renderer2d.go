package renderer2d

import (
	"strconv"

	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx"
)

// Max textures per batch; matches the uTex array of the fragment shader.
const maxTexSlots = 8

// Vertex: pos2 + color4 + uv2 + texIndex1 + rect4 + radius1 => 14 floats
const vStride = 14
const vertsPerQuad = 4
const indsPerQuad = 6

var quadVertexLayout = gfx.VertexLayout{
	Stride: vStride * 4,
	Attributes: []gfx.VertexAttrib{
		{Location: 0, Size: 2, Type: gfx.AttribFloat32, Offset: 0},      // pos
		{Location: 1, Size: 4, Type: gfx.AttribFloat32, Offset: 2 * 4},  // color
		{Location: 2, Size: 2, Type: gfx.AttribFloat32, Offset: 6 * 4},  // uv
		{Location: 3, Size: 1, Type: gfx.AttribFloat32, Offset: 8 * 4},  // texIndex
		{Location: 4, Size: 4, Type: gfx.AttribFloat32, Offset: 9 * 4},  // rect x,y,w,h
		{Location: 5, Size: 1, Type: gfx.AttribFloat32, Offset: 13 * 4}, // corner radius
	},
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches axis-aligned quads in pixel space, top-left origin.
// Quads are drawn in submission order.
type Renderer2D struct {
	dev    gfx.Device
	pipe   gfx.Pipeline
	white  gfx.Texture // 1x1 white (slot 0)
	texArr [maxTexSlots]gfx.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     gfx.Mesh
	samplers map[string]gfx.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	vp    [16]float32
	stats Statistics
}

// New creates renderer and compiles the shader pipeline.
func New(dev gfx.Device, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := dev.CreatePipeline(gfx.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}

	// build 1x1 white texture
	white, err := dev.CreateTexture(gfx.TextureDesc{
		Width: 1, Height: 1,
		Format:    gfx.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	rd := &Renderer2D{
		dev: dev, pipe: pipe, white: white, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
	}

	// Create a reusable mesh large enough for the biggest batch.
	mesh, err := dev.CreateMesh(gfx.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, err
	}
	rd.mesh = mesh

	rd.samplers = make(map[string]gfx.Texture, maxTexSlots)
	rd.uniforms = make(map[string]any, 1)
	for i := 0; i < maxTexSlots; i++ {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.resetBatch()
	return rd, nil
}

// Ortho returns the column-major projection mapping pixel coordinates of a
// width x height window (origin top-left, Y down) to clip space.
func Ortho(width, height float32) [16]float32 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawRect draws a solid rectangle with top-left corner (x, y). A positive
// radius rounds the corners.
func (rd *Renderer2D) DrawRect(x, y, w, h float32, color colors.Color, radius float32) {
	if color[3] <= 0 || w <= 0 || h <= 0 {
		return
	}
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rd.texSlot(rd.white), 0, 0, 1, 1, radius)
}

// DrawTexturedQuadUV draws the sub-rect (u0,v0)-(u1,v1) of tex, tinted.
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex gfx.Texture, tint colors.Color, u0, v0, u1, v1 float32) {
	if tint[3] <= 0 || w <= 0 || h <= 0 {
		return
	}
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, slot, u0, v0, u1, v1, 0)
}

// --- internals ---

func (rd *Renderer2D) texSlot(t gfx.Texture) float32 {
	// already in array?
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	// need a new slot
	if rd.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, texIndex float32, u0, v0, u1, v1, radius float32) {
	// corners (TL, TR, BL, BR) with UVs. Positive Y goes down.
	corners := [4][4]float32{
		{x, y, u0, v0},
		{x + w, y, u1, v0},
		{x, y + h, u0, v1},
		{x + w, y + h, u1, v1},
	}

	startVertex := uint32(len(rd.verts) / vStride)

	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
			x, y, w, h,
			radius,
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}

	if err := rd.dev.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		panic(err)
	}

	for k := range rd.samplers {
		delete(rd.samplers, k)
	}
	for i := 0; i < maxTexSlots; i++ {
		// Unused slots still need a valid binding.
		t := rd.texArr[i]
		if t == nil {
			t = rd.white
		}
		rd.samplers[rd.texNames[i]] = t
	}
	rd.uniforms["uVP"] = rd.vp

	rd.dev.Draw(gfx.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: len(rd.inds),
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++

	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	for i := range rd.texArr {
		rd.texArr[i] = nil
	}
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
