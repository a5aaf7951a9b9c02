package cursor

import (
	"testing"

	"gotest.tools/v3/assert"
)

type label struct {
	name  string
	tags  []string
	clone bool
}

func (l label) Clone() label {
	out := label{name: l.name, tags: make([]string, len(l.tags)), clone: true}
	copy(out.tags, l.tags)
	return out
}

func TestRev_Slice(t *testing.T) {
	got := Collect(Rev(Of(1, 2, 3)))
	want := []int{3, 2, 1}
	assert.DeepEqual(t, got, want)
}

func TestRev_Enumerated(t *testing.T) {
	got := Collect(Enumerate(Rev(Of(1, 2, 3))))
	want := []Zipped[int, int]{
		{V1: 0, V2: 3},
		{V1: 1, V2: 2},
		{V1: 2, V2: 1},
	}
	assert.DeepEqual(t, got, want)
}

func TestRev_Range(t *testing.T) {
	got := Collect(Rev(Range[int]{Lo: 1, Hi: 5}))
	want := []int{4, 3, 2, 1}
	assert.DeepEqual(t, got, want)
}

func TestCopied_Dereferences(t *testing.T) {
	a, b, c := 1, 2, 3
	got := Collect(Copied(Of(&a, &b, &c)))
	want := []int{1, 2, 3}
	assert.DeepEqual(t, got, want)
}

func TestCopied_CopiesNotAliases(t *testing.T) {
	a := 1
	cur := Copied(Of(&a))
	a = 42
	v, _ := cur.Next()
	assert.Equal(t, v, 42)
	a = 7 // already copied out; the yielded value must not follow
	assert.Equal(t, v, 42)
}

func TestCloned_UsesClone(t *testing.T) {
	l1 := label{name: "a", tags: []string{"x"}}
	l2 := label{name: "b"}
	got := Collect(Cloned(Of(&l1, &l2)))
	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0].name, "a")
	assert.Equal(t, got[0].clone, true)
	assert.Equal(t, got[1].clone, true)
	got[0].tags[0] = "y"
	assert.Equal(t, l1.tags[0], "x")
}
