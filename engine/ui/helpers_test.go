package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicKind runs fn and checks that it panics with an *Error of the
// given kind wrapping target.
func requirePanicKind(t *testing.T, kind ErrorKind, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(*Error)
		require.True(t, ok, "panic value %v is not *Error", r)
		assert.Equal(t, kind, err.Kind)
		assert.True(t, errors.Is(err, target), "%v does not wrap %v", err, target)
	}()
	fn()
}

// recorder is a leaf that remembers every event offered to it.
type recorder struct {
	node
	seen []Event
}

func newRecorder() *recorder { return &recorder{node: newNode()} }

func (r *recorder) Compute(x, y float64, z int, width, height float64, l *Layout) {
	l.Insert(r.id, Computed{X: x, Y: y, Z: z, Width: width, Height: height})
}

func (r *recorder) Dispatch(ev Event, changed bool, _ *Layout) (Event, bool) {
	r.seen = append(r.seen, ev)
	return ev, changed
}
