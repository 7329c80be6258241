package ui

import (
	"io"
	"math"
	"sort"

	"github.com/hubastard/winkel/engine/colors"
	"gopkg.in/yaml.v3"
)

// Style is the paint data of a rectangle.
type Style struct {
	Color        colors.Color
	BorderRadius float64
}

// TextStyle is the paint data of a run of text. Font is a font file path and
// Size a pixel size.
type TextStyle struct {
	Font  string
	Size  int
	Color colors.Color
}

// RenderObject is what a renderer draws for one layout entry.
type RenderObject interface{ isRender() }

type RenderRect struct {
	Style Style
}

func (RenderRect) isRender() {}

type RenderText struct {
	Text  string
	Style TextStyle
}

func (RenderText) isRender() {}

// Computed is the absolute, paint-ready record of one widget. Z is a paint
// order index, not a tree depth. Render is nil for layout-only widgets.
type Computed struct {
	X, Y          float64
	Z             int
	Width, Height float64
	Render        RenderObject
}

// Contains reports whether (x, y) lies in the half-open rectangle
// [X, X+Width) x [Y, Y+Height).
func (c Computed) Contains(x, y float64) bool {
	return x >= c.X && y >= c.Y && x < c.X+c.Width && y < c.Y+c.Height
}

// ContainsRounded is Contains with the four corner arcs of radius r cut away.
// The radius is clamped to half the shorter side, matching the rect shader.
func (c Computed) ContainsRounded(x, y, r float64) bool {
	if !c.Contains(x, y) {
		return false
	}
	r = math.Min(r, math.Min(c.Width, c.Height)/2)
	if r <= 0 {
		return true
	}
	cx := math.Max(c.X+r, math.Min(x, c.X+c.Width-r))
	cy := math.Max(c.Y+r, math.Min(y, c.Y+c.Height-r))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// Layout is the flat, id-keyed result of one compute pass. It is rebuilt from
// scratch on every pass and is read-only once Compute returns.
type Layout struct {
	entries map[ID]Computed
	order   []ID
}

func NewLayout() *Layout {
	return &Layout{entries: make(map[ID]Computed)}
}

// Insert records c for id. A widget reachable twice in the tree keeps its
// first paint position and its last geometry.
func (l *Layout) Insert(id ID, c Computed) {
	if _, ok := l.entries[id]; !ok {
		l.order = append(l.order, id)
	}
	l.entries[id] = c
}

func (l *Layout) Get(id ID) (Computed, bool) {
	c, ok := l.entries[id]
	return c, ok
}

// MustGet is Get for callers that cannot continue without the entry.
func (l *Layout) MustGet(id ID, op string) Computed {
	c, ok := l.entries[id]
	if !ok {
		fail(op, KindLayout, ErrMissingLayout)
	}
	return c
}

func (l *Layout) Len() int { return len(l.entries) }

// Entry pairs a widget id with its record.
type Entry struct {
	ID ID
	Computed
}

// Paintables returns the entries with a render payload in ascending Z.
// Entries sharing a Z keep tree order.
func (l *Layout) Paintables() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		c := l.entries[id]
		if c.Render != nil {
			out = append(out, Entry{ID: id, Computed: c})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

type yamlEntry struct {
	ID     ID           `yaml:"id"`
	X      float64      `yaml:"x"`
	Y      float64      `yaml:"y"`
	Z      int          `yaml:"z"`
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Kind   string       `yaml:"kind"`
	Text   string       `yaml:"text,omitempty"`
	Font   string       `yaml:"font,omitempty"`
	Size   int          `yaml:"size,omitempty"`
	Color  colors.Color `yaml:"color,omitempty"`
	Radius float64      `yaml:"radius,omitempty"`
}

// WriteYAML dumps the layout in tree order for debugging.
func (l *Layout) WriteYAML(w io.Writer) error {
	out := make([]yamlEntry, 0, len(l.order))
	for _, id := range l.order {
		c := l.entries[id]
		e := yamlEntry{ID: id, X: c.X, Y: c.Y, Z: c.Z, Width: c.Width, Height: c.Height, Kind: "layout"}
		switch r := c.Render.(type) {
		case RenderRect:
			e.Kind = "rect"
			e.Color = r.Style.Color
			e.Radius = r.Style.BorderRadius
		case RenderText:
			e.Kind = "text"
			e.Text = r.Text
			e.Font = r.Style.Font
			e.Size = r.Style.Size
			e.Color = r.Style.Color
		}
		out = append(out, e)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
