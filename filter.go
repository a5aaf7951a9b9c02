// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the selecting adapters: Filter, SkipWhile, TakeWhile,
// Skip, Take and StepBy.
package cursor

// Filter returns a cursor yielding only the elements of src for which
// pred returns true.
func Filter[E any](src Source[E], pred func(E) bool) Cursor[E] {
	cur := src.IntoCursor()
	return cursorFunc[E](func() (E, bool) {
		for {
			e, ok := cur.Next()
			if !ok || pred(e) {
				return e, ok
			}
		}
	})
}

// SkipWhile returns a cursor that drops leading elements of src while
// pred holds, then yields every remaining element unfiltered.
func SkipWhile[E any](src Source[E], pred func(E) bool) Cursor[E] {
	cur := src.IntoCursor()
	skipping := true
	return cursorFunc[E](func() (E, bool) {
		for {
			e, ok := cur.Next()
			if !ok {
				return e, false
			}
			if skipping && pred(e) {
				continue
			}
			skipping = false
			return e, true
		}
	})
}

// TakeWhile returns a cursor yielding elements of src until pred first
// fails, after which the cursor is exhausted permanently.
func TakeWhile[E any](src Source[E], pred func(E) bool) Cursor[E] {
	cur := src.IntoCursor()
	done := false
	return cursorFunc[E](func() (E, bool) {
		var zero E
		if done {
			return zero, false
		}
		e, ok := cur.Next()
		if !ok || !pred(e) {
			done = true
			return zero, false
		}
		return e, true
	})
}

// Skip returns a cursor that drops the first n elements of src and yields
// the rest. The dropped elements are consumed lazily, on the first Next.
func Skip[E any](src Source[E], n int) Cursor[E] {
	cur := src.IntoCursor()
	remaining := n
	return cursorFunc[E](func() (E, bool) {
		for remaining > 0 {
			remaining--
			if _, ok := cur.Next(); !ok {
				remaining = 0
				var zero E
				return zero, false
			}
		}
		return cur.Next()
	})
}

// Take returns a cursor yielding at most the first n elements of src.
// Once n elements have been yielded the underlying cursor is not advanced
// further.
func Take[E any](src Source[E], n int) Cursor[E] {
	cur := src.IntoCursor()
	remaining := n
	return cursorFunc[E](func() (E, bool) {
		if remaining <= 0 {
			var zero E
			return zero, false
		}
		e, ok := cur.Next()
		if !ok {
			remaining = 0
			return e, false
		}
		remaining--
		return e, true
	})
}

// StepBy returns a cursor yielding every step-th element of src, starting
// from the first. It panics if step is not positive.
func StepBy[E any](src Source[E], step int) Cursor[E] {
	if step < 1 {
		panic("cursor: StepBy step must be positive")
	}
	cur := src.IntoCursor()
	first := true
	return cursorFunc[E](func() (E, bool) {
		if first {
			first = false
			return cur.Next()
		}
		for i := 1; i < step; i++ {
			if _, ok := cur.Next(); !ok {
				var zero E
				return zero, false
			}
		}
		return cur.Next()
	})
}
