// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the concatenating adapters: Chain, FlatMap, Flatten
// and Cycle.
package cursor

// Chain returns a cursor yielding all elements of a followed by all
// elements of b. Both sources are converted up front but neither is
// advanced until the result is driven, so a borrowed cursor passed as b
// keeps its unconsumed remainder observable.
func Chain[E any](a, b Source[E]) Cursor[E] {
	curA, curB := a.IntoCursor(), b.IntoCursor()
	onB := false
	return cursorFunc[E](func() (E, bool) {
		if !onB {
			if e, ok := curA.Next(); ok {
				return e, true
			}
			onB = true
		}
		return curB.Next()
	})
}

// FlatMap returns a cursor that maps each element of src to a sub-source
// via f and yields the sub-sources' elements in order, lazily.
func FlatMap[E, B any](src Source[E], f func(E) Source[B]) Cursor[B] {
	cur := src.IntoCursor()
	var inner Cursor[B]
	return cursorFunc[B](func() (B, bool) {
		for {
			if inner != nil {
				if b, ok := inner.Next(); ok {
					return b, true
				}
				inner = nil
			}
			e, ok := cur.Next()
			if !ok {
				var zero B
				return zero, false
			}
			inner = f(e).IntoCursor()
		}
	})
}

// Flatten returns a cursor concatenating the elements of a source of
// sources, lazily.
func Flatten[E any](src Source[Source[E]]) Cursor[E] {
	return FlatMap(src, func(s Source[E]) Source[E] { return s })
}

// Cycle returns a cursor repeating the elements of src indefinitely. The
// source is re-converted at the end of each pass, so it must yield an
// independent cursor per conversion (container sources do; an existing
// cursor does not). If src proves empty, the cursor stops instead of
// spinning.
func Cycle[E any](src Source[E]) Cursor[E] {
	cur := src.IntoCursor()
	return cursorFunc[E](func() (E, bool) {
		if e, ok := cur.Next(); ok {
			return e, true
		}
		cur = src.IntoCursor()
		return cur.Next()
	})
}
