// Package paint draws a computed ui.Layout with the batched 2D renderer.
package paint

import (
	"fmt"
	"log/slog"

	"github.com/hubastard/winkel/engine/assets"
	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/gfx"
	"github.com/hubastard/winkel/engine/gfx/renderer2d"
	"github.com/hubastard/winkel/engine/profiler"
	"github.com/hubastard/winkel/engine/text"
	"github.com/hubastard/winkel/engine/ui"
)

type Options struct {
	FontDir  string
	MaxQuads int
}

// Painter implements core.Renderer. Projection uses window coordinates and
// the viewport covers the framebuffer, so HiDPI scaling happens on the GPU.
type Painter struct {
	dev   gfx.Device
	r2d   *renderer2d.Renderer2D
	fonts *text.Cache
	log   *slog.Logger
}

func New(dev gfx.Device, opts Options, log *slog.Logger) (*Painter, error) {
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		return nil, err
	}
	r2d, err := renderer2d.New(dev, vs, fs, opts.MaxQuads)
	if err != nil {
		return nil, fmt.Errorf("renderer2d: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Painter{
		dev:   dev,
		r2d:   r2d,
		fonts: text.NewCache(dev, opts.FontDir),
		log:   log,
	}, nil
}

func (p *Painter) Resize(fbWidth, fbHeight int) { p.dev.Viewport(fbWidth, fbHeight) }

func (p *Painter) Clear(c colors.Color) { p.dev.Clear(c) }

// Render draws every paintable entry of l in ascending Z.
func (p *Painter) Render(l *ui.Layout, windowWidth, windowHeight float64) {
	defer profiler.Start("paint.Render")()

	p.r2d.BeginScene(renderer2d.Ortho(float32(windowWidth), float32(windowHeight)))
	for _, e := range l.Paintables() {
		x, y := float32(e.X), float32(e.Y)
		switch r := e.Render.(type) {
		case ui.RenderRect:
			p.r2d.DrawRect(x, y, float32(e.Width), float32(e.Height), r.Style.Color, float32(r.Style.BorderRadius))
		case ui.RenderText:
			fa, loaded, err := p.fonts.Font(r.Style.Font, r.Style.Size)
			if err != nil {
				if loaded {
					p.log.Error("font unavailable", "font", r.Style.Font, "size", r.Style.Size, "err", err)
				}
				continue
			}
			if loaded {
				p.log.Debug("font loaded", "font", r.Style.Font, "size", r.Style.Size, "atlas", fa.AtlasW)
			}
			text.DrawText(p.r2d, fa, x, y, r.Text, r.Style.Color)
		}
	}
	p.r2d.EndScene()
}

func (p *Painter) Stats() renderer2d.Statistics { return p.r2d.Stats() }

func (p *Painter) Shutdown() {
	p.fonts.Close()
	p.dev.Release()
}
