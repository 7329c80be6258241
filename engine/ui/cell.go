package ui

import "fmt"

// Cell is the interior of a stateful widget: a value guarded by a dynamic
// borrow check. Any number of shared borrows may be live at once, or a
// single exclusive one, never both. A violation panics with an *Error of
// kind KindBorrow.
//
// Cells are not safe for concurrent use; the whole tree lives on one thread.
type Cell[T any] struct {
	value   T
	readers int
	writing bool
}

func NewCell[T any](v T) *Cell[T] { return &Cell[T]{value: v} }

// Ref is a live shared borrow of a Cell.
type Ref[T any] struct {
	c    *Cell[T]
	done *bool
}

// RefMut is a live exclusive borrow of a Cell.
type RefMut[T any] struct {
	c    *Cell[T]
	done *bool
}

func (c *Cell[T]) Borrow() Ref[T] {
	if c.writing {
		fail("Cell.Borrow", KindBorrow, fmt.Errorf("%w mutably", ErrBorrowed))
	}
	c.readers++
	return Ref[T]{c: c, done: new(bool)}
}

func (c *Cell[T]) BorrowMut() RefMut[T] {
	if c.writing {
		fail("Cell.BorrowMut", KindBorrow, fmt.Errorf("%w mutably", ErrBorrowed))
	}
	if c.readers > 0 {
		fail("Cell.BorrowMut", KindBorrow, fmt.Errorf("%w by %d reader(s)", ErrBorrowed, c.readers))
	}
	c.writing = true
	return RefMut[T]{c: c, done: new(bool)}
}

// Get copies the value out under a shared borrow.
func (c *Cell[T]) Get() T {
	r := c.Borrow()
	defer r.Release()
	return r.Value()
}

// Update runs fn under an exclusive borrow.
func (c *Cell[T]) Update(fn func(*T)) {
	w := c.BorrowMut()
	defer w.Release()
	fn(w.Value())
}

// Value returns a copy of the borrowed value.
func (r Ref[T]) Value() T {
	r.check("Ref.Value")
	return r.c.value
}

func (r Ref[T]) Release() {
	r.check("Ref.Release")
	*r.done = true
	r.c.readers--
}

func (r Ref[T]) check(op string) {
	if r.c == nil || *r.done {
		fail(op, KindBorrow, ErrReleased)
	}
}

// Value returns a pointer to the borrowed value; it must not be kept past Release.
func (w RefMut[T]) Value() *T {
	w.check("RefMut.Value")
	return &w.c.value
}

func (w RefMut[T]) Release() {
	w.check("RefMut.Release")
	*w.done = true
	w.c.writing = false
}

func (w RefMut[T]) check(op string) {
	if w.c == nil || *w.done {
		fail(op, KindBorrow, ErrReleased)
	}
}

// State is an externally held handle onto the Cell of a widget. It starts
// unbound and is bound exactly once by a builder's BuildStateful call.
type State[T any] struct {
	cell *Cell[T]
}

func NewState[T any]() *State[T] { return &State[T]{} }

func (s *State[T]) Bind(c *Cell[T]) {
	if s.cell != nil {
		fail("State.Bind", KindState, ErrAlreadyBound)
	}
	s.cell = c
}

func (s *State[T]) Bound() bool { return s.cell != nil }

func (s *State[T]) Borrow() Ref[T]       { return s.mustCell("State.Borrow").Borrow() }
func (s *State[T]) BorrowMut() RefMut[T] { return s.mustCell("State.BorrowMut").BorrowMut() }
func (s *State[T]) Get() T               { return s.mustCell("State.Get").Get() }
func (s *State[T]) Update(fn func(*T))   { s.mustCell("State.Update").Update(fn) }

func (s *State[T]) mustCell(op string) *Cell[T] {
	if s == nil || s.cell == nil {
		fail(op, KindState, ErrUnbound)
	}
	return s.cell
}
