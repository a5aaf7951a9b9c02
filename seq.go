// Package cursor provides conversion-transparent sequence adapters.
//
// This file contains the bridges back to ordinary Go iteration: Seq and
// Collect.
package cursor

import "iter"

// Seq returns an iter.Seq view of src for use with range. The source is
// converted once per invocation: ranging twice over a container source
// restarts, while ranging over an existing cursor resumes where it left
// off, and breaking out of the loop leaves the remainder unconsumed.
func Seq[E any](src Source[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		cur := src.IntoCursor()
		for {
			e, ok := cur.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Collect drains src into a slice.
func Collect[E any](src Source[E]) []E {
	var out []E
	cur := src.IntoCursor()
	for {
		e, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
