// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains Rev, Copied and Cloned.
package cursor

// Rev returns a cursor traversing src back to front. It requires a
// ReverseSource; adapted cursors do not support reverse traversal.
func Rev[E any](src ReverseSource[E]) Cursor[E] {
	return src.IntoReverseCursor()
}

// Copied returns a cursor that dereferences each pointer element of src,
// yielding shallow copies of the pointed-to values.
func Copied[E any](src Source[*E]) Cursor[E] {
	cur := src.IntoCursor()
	return cursorFunc[E](func() (E, bool) {
		p, ok := cur.Next()
		if !ok {
			var zero E
			return zero, false
		}
		return *p, true
	})
}

// Cloned returns a cursor that dereferences each pointer element of src
// and yields a clone of the pointed-to value.
func Cloned[E Cloner[E]](src Source[*E]) Cursor[E] {
	cur := src.IntoCursor()
	return cursorFunc[E](func() (E, bool) {
		p, ok := cur.Next()
		if !ok {
			var zero E
			return zero, false
		}
		return (*p).Clone(), true
	})
}
