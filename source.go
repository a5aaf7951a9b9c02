// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the owned-container Sources: Slice, Range and FromSeq.
package cursor

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Slice is a slice usable as a Source. Every conversion yields an
// independent cursor, so a Slice can be traversed any number of times.
type Slice[E any] []E

// Of returns a Slice source yielding the given values in order.
func Of[E any](vals ...E) Slice[E] {
	return vals
}

// IntoCursor returns a fresh cursor over the slice, front to back.
func (s Slice[E]) IntoCursor() Cursor[E] {
	i := 0
	return cursorFunc[E](func() (E, bool) {
		if i >= len(s) {
			var zero E
			return zero, false
		}
		e := s[i]
		i++
		return e, true
	})
}

// IntoReverseCursor returns a fresh cursor over the slice, back to front.
func (s Slice[E]) IntoReverseCursor() Cursor[E] {
	i := len(s)
	return cursorFunc[E](func() (E, bool) {
		if i == 0 {
			var zero E
			return zero, false
		}
		i--
		return s[i], true
	})
}

// Range is a half-open integer interval [Lo, Hi) usable as a Source.
// An empty or inverted interval yields nothing.
type Range[T constraints.Integer] struct {
	Lo, Hi T
}

// IntoCursor returns a fresh cursor counting up from Lo to Hi exclusive.
func (r Range[T]) IntoCursor() Cursor[T] {
	n := r.Lo
	return cursorFunc[T](func() (T, bool) {
		if n >= r.Hi {
			return 0, false
		}
		e := n
		n++
		return e, true
	})
}

// IntoReverseCursor returns a fresh cursor counting down from Hi exclusive to Lo.
func (r Range[T]) IntoReverseCursor() Cursor[T] {
	n := r.Hi
	return cursorFunc[T](func() (T, bool) {
		if n <= r.Lo {
			return 0, false
		}
		n--
		return n, true
	})
}

// seqSource adapts an iter.Seq into a Source via iter.Pull.
type seqSource[E any] iter.Seq[E]

func (s seqSource[E]) IntoCursor() Cursor[E] {
	next, stop := iter.Pull(iter.Seq[E](s))
	return cursorFunc[E](func() (E, bool) {
		e, ok := next()
		if !ok {
			stop()
		}
		return e, ok
	})
}

// FromSeq returns a Source over a Go iter.Seq. Each conversion pulls from
// a new invocation of seq, so the result is as restartable as seq itself.
// A cursor abandoned before exhaustion keeps its pull iterator alive until
// it is collected.
func FromSeq[E any](seq iter.Seq[E]) Source[E] {
	return seqSource[E](seq)
}
