// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the pairing adapters: Zip and Enumerate.
package cursor

// Zipped holds one element from each of two zipped sequences.
type Zipped[A, B any] struct {
	V1 A
	V2 B
}

// Zip returns a cursor pairing elements of a and b positionally. It stops
// as soon as either source is exhausted.
func Zip[A, B any](a Source[A], b Source[B]) Cursor[Zipped[A, B]] {
	curA, curB := a.IntoCursor(), b.IntoCursor()
	return cursorFunc[Zipped[A, B]](func() (Zipped[A, B], bool) {
		x, ok := curA.Next()
		if !ok {
			return Zipped[A, B]{}, false
		}
		y, ok := curB.Next()
		if !ok {
			return Zipped[A, B]{}, false
		}
		return Zipped[A, B]{V1: x, V2: y}, true
	})
}

// Enumerate returns a cursor pairing each element of src with its
// zero-based position.
func Enumerate[E any](src Source[E]) Cursor[Zipped[int, E]] {
	cur := src.IntoCursor()
	i := 0
	return cursorFunc[Zipped[int, E]](func() (Zipped[int, E], bool) {
		e, ok := cur.Next()
		if !ok {
			return Zipped[int, E]{}, false
		}
		z := Zipped[int, E]{V1: i, V2: e}
		i++
		return z, true
	})
}
