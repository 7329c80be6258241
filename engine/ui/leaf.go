package ui

import "github.com/hubastard/winkel/engine/colors"

// Rectangle is the state of a filled, optionally rounded rectangle.
type Rectangle struct {
	Color        colors.Color
	BorderRadius float64
}

// RectangleWidget paints a Rectangle read from its cell on every compute.
type RectangleWidget struct {
	node
	cell *Cell[Rectangle]
}

type RectangleBuilder struct {
	r Rectangle
}

func NewRectangle(color colors.Color) *RectangleBuilder {
	return &RectangleBuilder{r: Rectangle{Color: color}}
}

func (b *RectangleBuilder) Border(radius float64) *RectangleBuilder {
	b.r.BorderRadius = radius
	return b
}

func (b *RectangleBuilder) Build() *RectangleWidget {
	return &RectangleWidget{node: newNode(), cell: NewCell(b.r)}
}

// BuildStateful builds the widget and binds state to its cell. A state that
// is already bound panics before an id is allocated.
func (b *RectangleBuilder) BuildStateful(state *State[Rectangle]) *RectangleWidget {
	cell := NewCell(b.r)
	state.Bind(cell)
	return &RectangleWidget{node: newNode(), cell: cell}
}

func (w *RectangleWidget) Compute(x, y float64, z int, width, height float64, l *Layout) {
	r := w.cell.Get()
	l.Insert(w.id, Computed{
		X: x, Y: y, Z: z, Width: width, Height: height,
		Render: RenderRect{Style: Style{Color: r.Color, BorderRadius: r.BorderRadius}},
	})
}

func (w *RectangleWidget) Dispatch(ev Event, changed bool, _ *Layout) (Event, bool) {
	return ev, changed
}

// Text is the state of a single run of text.
type Text struct {
	Text  string
	Font  string
	Size  int
	Color colors.Color
}

// TextWidget paints a Text read from its cell on every compute.
type TextWidget struct {
	node
	cell *Cell[Text]
}

type TextBuilder struct {
	t Text
}

// NewText starts a text leaf drawn with the font file at path font, size in pixels.
func NewText(text string, size int, font string) *TextBuilder {
	return &TextBuilder{t: Text{Text: text, Size: size, Font: font, Color: colors.Black}}
}

func (b *TextBuilder) Color(c colors.Color) *TextBuilder {
	b.t.Color = c
	return b
}

func (b *TextBuilder) Build() *TextWidget {
	return &TextWidget{node: newNode(), cell: NewCell(b.t)}
}

func (b *TextBuilder) BuildStateful(state *State[Text]) *TextWidget {
	cell := NewCell(b.t)
	state.Bind(cell)
	return &TextWidget{node: newNode(), cell: cell}
}

func (w *TextWidget) Compute(x, y float64, z int, width, height float64, l *Layout) {
	t := w.cell.Get()
	l.Insert(w.id, Computed{
		X: x, Y: y, Z: z, Width: width, Height: height,
		Render: RenderText{Text: t.Text, Style: TextStyle{Font: t.Font, Size: t.Size, Color: t.Color}},
	})
}

func (w *TextWidget) Dispatch(ev Event, changed bool, _ *Layout) (Event, bool) {
	return ev, changed
}

// Empty takes space in a container but records nothing.
type Empty struct {
	node
}

func NewEmpty() *Empty { return &Empty{node: newNode()} }

func (*Empty) Compute(float64, float64, int, float64, float64, *Layout) {}

func (*Empty) Dispatch(ev Event, changed bool, _ *Layout) (Event, bool) {
	return ev, changed
}
