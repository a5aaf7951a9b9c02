// Package cursor provides free functions that mirror the usual sequence
// transformations (Map, Filter, Chain, Zip, ...) but accept anything
// convertible to a cursor: an owned container, an existing cursor, or a
// handle borrowed from one.
//
// Each function performs exactly one conversion and one forwarding step;
// it never buffers, copies, or reorders elements. Passing a container
// yields a fresh cursor; passing an existing Cursor advances that cursor
// in place, so the remainder stays observable after the adapted result
// has been driven.
//
// This file contains the core capability types shared by all adapters.
package cursor

// Cursor is a single-pass, stateful handle over a sequence. Next returns
// the next element, or ok == false once the sequence is exhausted.
//
// A Cursor is its own Source: converting one returns the same handle, so
// adapters built on it consume from the original.
type Cursor[E any] interface {
	Source[E]
	Next() (E, bool)
}

// Source is anything convertible to a Cursor. Container sources return an
// independent cursor on every conversion; a Cursor returns itself.
type Source[E any] interface {
	IntoCursor() Cursor[E]
}

// ReverseSource is a Source that additionally supports back-to-front
// traversal. Rev requires it.
type ReverseSource[E any] interface {
	Source[E]
	IntoReverseCursor() Cursor[E]
}

// Cloner is implemented by element types that can produce a copy of
// themselves. Cloned requires it.
type Cloner[E any] interface {
	Clone() E
}

// cursorFunc adapts a next function into a Cursor. All adapters in this
// package return one, so their results compose as Sources.
type cursorFunc[E any] func() (E, bool)

func (f cursorFunc[E]) Next() (E, bool)       { return f() }
func (f cursorFunc[E]) IntoCursor() Cursor[E] { return f }
