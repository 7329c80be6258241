package ui

import (
	"bytes"
	"testing"

	"github.com/hubastard/winkel/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func rect(c colors.Color) *RectangleWidget { return NewRectangle(c).Build() }

func mustGet(t *testing.T, l *Layout, w Widget) Computed {
	t.Helper()
	c, ok := l.Get(w.ID())
	require.True(t, ok, "no entry for widget %d", w.ID())
	return c
}

func TestPaddingInsets(t *testing.T) {
	child := rect(colors.Red)
	p := NewPadding(child).Each(1, 2, 3, 4).Build()
	c := mustGet(t, Compute(p, 100, 50), child)
	assert.Equal(t, 1.0, c.X)
	assert.Equal(t, 2.0, c.Y)
	assert.Equal(t, 96.0, c.Width)
	assert.Equal(t, 44.0, c.Height)
}

func TestPaddingLargerThanBox(t *testing.T) {
	for _, pad := range []float64{50, 60, 1000} {
		child := rect(colors.Red)
		p := NewPadding(child).All(pad).Build()
		c := mustGet(t, Compute(p, 100, 100), child)
		assert.Equal(t, 0.0, c.Width, "pad %v", pad)
		assert.Equal(t, 0.0, c.Height, "pad %v", pad)
	}
}

func TestPaddingSymmetric(t *testing.T) {
	child := rect(colors.Red)
	p := NewPadding(child).Symmetric(10, 5).Build()
	c := mustGet(t, Compute(p, 100, 100), child)
	assert.Equal(t, Computed{X: 10, Y: 5, Width: 80, Height: 90, Render: c.Render}, c)
}

func TestRowSplitsByWeight(t *testing.T) {
	a, b, c := rect(colors.Red), rect(colors.Green), rect(colors.Blue)
	row := NewRow().AddFlex(a, 1).AddFlex(b, 2).AddFlex(c, 3).MustBuild()
	l := Compute(NewPadding(row).Each(10, 20, 0, 0).Build(), 610, 70)

	ca, cb, cc := mustGet(t, l, a), mustGet(t, l, b), mustGet(t, l, c)
	assert.InDelta(t, 600, ca.Width+cb.Width+cc.Width, 1e-9)
	assert.InDelta(t, 2, cb.Width/ca.Width, 1e-9)
	assert.InDelta(t, 1.5, cc.Width/cb.Width, 1e-9)

	assert.Equal(t, 10.0, ca.X)
	assert.Equal(t, 110.0, cb.X)
	assert.Equal(t, 310.0, cc.X)
	for _, e := range []Computed{ca, cb, cc} {
		assert.Equal(t, 20.0, e.Y)
		assert.Equal(t, 50.0, e.Height)
		assert.Equal(t, 0, e.Z)
	}
}

func TestColumnSplitsByWeight(t *testing.T) {
	a, b := rect(colors.Red), rect(colors.Green)
	col := NewColumn().Add(a).AddFlex(b, 3).MustBuild()
	l := Compute(col, 30, 100)

	ca, cb := mustGet(t, l, a), mustGet(t, l, b)
	assert.Equal(t, Computed{X: 0, Y: 0, Width: 30, Height: 25, Render: ca.Render}, ca)
	assert.Equal(t, Computed{X: 0, Y: 25, Width: 30, Height: 75, Render: cb.Render}, cb)
	assert.Equal(t, Vertical, col.Axis())
}

func TestFlexZeroWeightChild(t *testing.T) {
	a, b := rect(colors.Red), rect(colors.Green)
	row := NewRow().AddFlex(a, 0).Add(b).MustBuild()
	l := Compute(row, 100, 10)
	assert.Equal(t, 0.0, mustGet(t, l, a).Width)
	assert.Equal(t, 100.0, mustGet(t, l, b).Width)
}

func TestFlexBuildErrors(t *testing.T) {
	_, err := NewRow().Build()
	assert.ErrorIs(t, err, ErrNoChildren)
	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, KindBuild, uerr.Kind)
	assert.Equal(t, "Row.Build", uerr.Op)

	_, err = NewColumn().AddFlex(NewEmpty(), 0).AddFlex(NewEmpty(), 0).Build()
	assert.ErrorIs(t, err, ErrZeroFlex)

	_, err = NewColumn().AddFlex(NewEmpty(), -1).AddFlex(NewEmpty(), 2).Build()
	assert.Error(t, err)

	assert.Panics(t, func() { NewColumn().MustBuild() })
}

func TestStackSharesGeometry(t *testing.T) {
	a, b, c := rect(colors.Red), rect(colors.Green), rect(colors.Blue)
	s := NewStack().Add(a).Add(b).Add(c).Build()
	l := NewLayout()
	s.Compute(5, 6, 2, 70, 80, l)

	for i, w := range []Widget{a, b, c} {
		e := mustGet(t, l, w)
		assert.Equal(t, 5.0, e.X)
		assert.Equal(t, 6.0, e.Y)
		assert.Equal(t, 70.0, e.Width)
		assert.Equal(t, 80.0, e.Height)
		assert.Equal(t, 2+i, e.Z)
	}
}

func TestGestureRecordsHitArea(t *testing.T) {
	child := rect(colors.Red)
	g := NewMouseGesture(child).Build()
	l := Compute(g, 40, 30)
	e := mustGet(t, l, g)
	assert.Nil(t, e.Render)
	assert.Equal(t, 40.0, e.Width)
	assert.Equal(t, mustGet(t, l, child).Width, e.Width)
}

func TestEmptyRecordsNothing(t *testing.T) {
	e := NewEmpty()
	l := Compute(NewRow().Add(e).Add(rect(colors.Red)).MustBuild(), 10, 10)
	_, ok := l.Get(e.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestComputeIsIdempotent(t *testing.T) {
	tree := NewPadding(
		NewButton(colors.Red).
			Child(NewColumn().
				Add(NewText("Hello World", 20, "Raleway-Regular.ttf").Build()).
				AddFlex(NewText("Hello World 2", 54, "Raleway-Regular.ttf").Build(), 2).
				MustBuild()).
			Build(nil),
	).All(30).Build()

	assert.Equal(t, Compute(tree, 1024, 768), Compute(tree, 1024, 768))
}

func TestComputeClampsNegativeWindow(t *testing.T) {
	r := rect(colors.Red)
	c := mustGet(t, Compute(r, -5, 10), r)
	assert.Equal(t, 0.0, c.Width)
}

func TestPaintablesOrder(t *testing.T) {
	back, front := rect(colors.Red), NewText("x", 10, "f.ttf").Build()
	side := rect(colors.Blue)
	tree := NewRow().
		Add(NewMouseGesture(NewStack().Add(back).Add(front).Build()).Build()).
		Add(side).
		MustBuild()

	ps := Compute(tree, 100, 100).Paintables()
	require.Len(t, ps, 3)
	assert.Equal(t, back.ID(), ps[0].ID)
	assert.Equal(t, side.ID(), ps[1].ID)
	assert.Equal(t, front.ID(), ps[2].ID)
	assert.Equal(t, 1, ps[2].Z)
}

func TestContains(t *testing.T) {
	c := Computed{X: 0, Y: 0, Width: 100, Height: 50}
	assert.True(t, c.Contains(0, 0))
	assert.True(t, c.Contains(99.9, 49.9))
	assert.False(t, c.Contains(100, 10))
	assert.False(t, c.Contains(-1, -1))

	assert.False(t, c.ContainsRounded(1, 1, 10))
	assert.True(t, c.ContainsRounded(10, 10, 10))
	assert.True(t, c.ContainsRounded(50, 1, 10))
	assert.True(t, c.ContainsRounded(1, 1, 0))
}

func TestMustGetMissing(t *testing.T) {
	requirePanicKind(t, KindLayout, ErrMissingLayout, func() {
		NewLayout().MustGet(42, "test")
	})
}

func TestWriteYAML(t *testing.T) {
	r := NewRectangle(colors.Red).Border(3).Build()
	txt := NewText("hello", 12, "f.ttf").Build()
	tree := NewMouseGesture(NewStack().Add(r).Add(txt).Build()).Build()

	var buf bytes.Buffer
	require.NoError(t, Compute(tree, 20, 10).WriteYAML(&buf))

	var out []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "rect", out[0]["kind"])
	assert.Equal(t, "#ff0000ff", out[0]["color"])
	assert.Equal(t, "text", out[1]["kind"])
	assert.Equal(t, "hello", out[1]["text"])
	assert.Equal(t, "layout", out[2]["kind"])
}
