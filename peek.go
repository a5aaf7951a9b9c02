// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains Peekable, Fuse and Inspect.
package cursor

// Peeker is a cursor with one element of non-consuming lookahead.
type Peeker[E any] struct {
	cur    Cursor[E]
	v      E
	ok     bool
	peeked bool
}

// Peekable returns a Peeker over src.
func Peekable[E any](src Source[E]) *Peeker[E] {
	return &Peeker[E]{cur: src.IntoCursor()}
}

// Peek reports the element the next call to Next will yield, without
// consuming it.
func (p *Peeker[E]) Peek() (E, bool) {
	if !p.peeked {
		p.v, p.ok = p.cur.Next()
		p.peeked = true
	}
	return p.v, p.ok
}

// Next returns the next element, consuming a previously peeked one first.
func (p *Peeker[E]) Next() (E, bool) {
	if p.peeked {
		p.peeked = false
		return p.v, p.ok
	}
	return p.cur.Next()
}

// IntoCursor returns the Peeker itself.
func (p *Peeker[E]) IntoCursor() Cursor[E] { return p }

// Fuse returns a cursor that, once exhausted, stays exhausted: after the
// first !ok result the underlying cursor is never consulted again.
func Fuse[E any](src Source[E]) Cursor[E] {
	cur := src.IntoCursor()
	done := false
	return cursorFunc[E](func() (E, bool) {
		var zero E
		if done {
			return zero, false
		}
		e, ok := cur.Next()
		if !ok {
			done = true
			return zero, false
		}
		return e, true
	})
}

// Inspect returns a cursor that calls f on each element of src as it
// passes through, unchanged.
func Inspect[E any](src Source[E], f func(E)) Cursor[E] {
	cur := src.IntoCursor()
	return cursorFunc[E](func() (E, bool) {
		e, ok := cur.Next()
		if ok {
			f(e)
		}
		return e, ok
	})
}
