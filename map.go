// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the mapping adapters: Map, FilterMap, MapWhile and
// Scan.
package cursor

// Map returns a cursor yielding f(e) for each element e of src.
func Map[E, B any](src Source[E], f func(E) B) Cursor[B] {
	cur := src.IntoCursor()
	return cursorFunc[B](func() (B, bool) {
		e, ok := cur.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return f(e), true
	})
}

// FilterMap returns a cursor applying f to each element of src and
// yielding only the results for which f reports ok.
func FilterMap[E, B any](src Source[E], f func(E) (B, bool)) Cursor[B] {
	cur := src.IntoCursor()
	return cursorFunc[B](func() (B, bool) {
		for {
			e, ok := cur.Next()
			if !ok {
				var zero B
				return zero, false
			}
			if b, ok := f(e); ok {
				return b, true
			}
		}
	})
}

// MapWhile returns a cursor yielding f(e) for each element of src until f
// first reports !ok, after which the cursor is exhausted permanently.
func MapWhile[E, B any](src Source[E], f func(E) (B, bool)) Cursor[B] {
	cur := src.IntoCursor()
	done := false
	return cursorFunc[B](func() (B, bool) {
		var zero B
		if done {
			return zero, false
		}
		e, ok := cur.Next()
		if !ok {
			return zero, false
		}
		b, ok := f(e)
		if !ok {
			done = true
			return zero, false
		}
		return b, true
	})
}

// Scan returns a cursor that threads mutable state through f, starting
// from initial. For each element of src, f may update the state and
// yields the next value; the cursor stops once f reports !ok.
func Scan[E, S, B any](src Source[E], initial S, f func(*S, E) (B, bool)) Cursor[B] {
	cur := src.IntoCursor()
	state := initial
	return cursorFunc[B](func() (B, bool) {
		var zero B
		e, ok := cur.Next()
		if !ok {
			return zero, false
		}
		b, ok := f(&state, e)
		if !ok {
			return zero, false
		}
		return b, true
	})
}
