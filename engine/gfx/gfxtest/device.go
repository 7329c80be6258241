// Package gfxtest provides an in-memory gfx.Device for tests.
package gfxtest

import (
	"fmt"

	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx"
)

type Texture struct {
	Desc gfx.TextureDesc
}

func (t *Texture) Size() (int, int) { return t.Desc.Width, t.Desc.Height }

type Pipeline struct{ Desc gfx.PipelineDesc }

type Mesh struct {
	Layout   gfx.VertexLayout
	Vertices []float32
	Indices  []uint32
}

// Draw is a recorded draw call with a copy of the mesh data it consumed.
type Draw struct {
	Cmd      gfx.DrawCmd
	Vertices []float32
	Indices  []uint32
}

// Device records everything it is asked to do.
type Device struct {
	Textures  []*Texture
	Pipelines []*Pipeline
	Meshes    []*Mesh
	Draws     []Draw
	Clears    []colors.Color
	Viewports [][2]int
	Released  bool
	// FailPipeline makes CreatePipeline return an error.
	FailPipeline bool
}

func (d *Device) CreatePipeline(desc gfx.PipelineDesc) (gfx.Pipeline, error) {
	if d.FailPipeline {
		return nil, fmt.Errorf("gfxtest: pipeline refused")
	}
	p := &Pipeline{Desc: desc}
	d.Pipelines = append(d.Pipelines, p)
	return p, nil
}

func (d *Device) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	t := &Texture{Desc: desc}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *Device) CreateMesh(desc gfx.MeshDesc) (gfx.Mesh, error) {
	m := &Mesh{Layout: desc.Layout, Vertices: desc.Vertices, Indices: desc.Indices}
	d.Meshes = append(d.Meshes, m)
	return m, nil
}

func (d *Device) UpdateMesh(m gfx.Mesh, vertices []float32, indices []uint32) error {
	mm, ok := m.(*Mesh)
	if !ok {
		return fmt.Errorf("gfxtest: foreign mesh %T", m)
	}
	mm.Vertices = append(mm.Vertices[:0:0], vertices...)
	mm.Indices = append(mm.Indices[:0:0], indices...)
	return nil
}

func (d *Device) Draw(cmd gfx.DrawCmd) {
	mm := cmd.Mesh.(*Mesh)
	uniforms := make(map[string]any, len(cmd.Uniforms))
	for k, v := range cmd.Uniforms {
		uniforms[k] = v
	}
	samplers := make(map[string]gfx.Texture, len(cmd.Samplers))
	for k, v := range cmd.Samplers {
		samplers[k] = v
	}
	cmd.Uniforms, cmd.Samplers = uniforms, samplers
	d.Draws = append(d.Draws, Draw{
		Cmd:      cmd,
		Vertices: append([]float32(nil), mm.Vertices...),
		Indices:  append([]uint32(nil), mm.Indices[:cmd.IndexCount]...),
	})
}

func (d *Device) Viewport(w, h int)    { d.Viewports = append(d.Viewports, [2]int{w, h}) }
func (d *Device) Clear(c colors.Color) { d.Clears = append(d.Clears, c) }
func (d *Device) Info() gfx.Info {
	return gfx.Info{Vendor: "gfxtest", Renderer: "memory", Version: "0"}
}
func (d *Device) Release() { d.Released = true }

// RGBA returns a descriptor for an opaque white RGBA8 texture.
func RGBA(w, h int) gfx.TextureDesc {
	px := make([]byte, w*h*4)
	for i := range px {
		px[i] = 255
	}
	return gfx.TextureDesc{Width: w, Height: h, Format: gfx.TextureRGBA8, Pixels: px}
}
