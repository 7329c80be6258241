// Package gfx is the graphics device abstraction the 2D renderer is written
// against. engine/gfx/gl implements it with OpenGL 3.3.
package gfx

import "github.com/hubastard/winkel/engine/colors"

// Opaque GPU handles. Handles are comparable.
type (
	Texture  interface{ Size() (int, int) }
	Pipeline interface{}
	Mesh     interface{}
)

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
	TextureR8
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	// Pixels are tightly packed rows, top row first.
	Pixels    []byte
	MinFilter string // "nearest" or "linear"
	MagFilter string
	WrapU     string // "clamp" or "repeat"
	WrapV     string
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws IndexCount indices of Mesh with Pipe. Uniform values may be
// float32, int32, [2]float32, [4]float32 or [16]float32 (column-major).
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}

type Info struct {
	Vendor, Renderer, Version string
}

type Device interface {
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)
	Viewport(width, height int)
	Clear(c colors.Color)
	Info() Info
	// Release frees every resource created by the device.
	Release()
}
