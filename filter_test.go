package cursor

import (
	"testing"

	"gotest.tools/v3/assert"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter_Int(t *testing.T) {
	got := Collect(Filter(Of(1, 2, 3, 4, 5, 6), isEven))
	want := []int{2, 4, 6}
	assert.DeepEqual(t, got, want)
}

func TestFilter_AllFalse(t *testing.T) {
	got := Collect(Filter(Of(1, 3, 5), isEven))
	assert.Equal(t, len(got), 0)
}

func TestSkipWhile_YieldsRestUnfiltered(t *testing.T) {
	got := Collect(SkipWhile(Of(1, 2, 3, 4, 1, 2), func(n int) bool { return n < 3 }))
	want := []int{3, 4, 1, 2}
	assert.DeepEqual(t, got, want)
}

func TestSkipWhile_AllSkipped(t *testing.T) {
	got := Collect(SkipWhile(Of(1, 2), func(_ int) bool { return true }))
	assert.Equal(t, len(got), 0)
}

func TestTakeWhile_StopsPermanently(t *testing.T) {
	cur := TakeWhile(Of(1, 2, 5, 1, 2), func(n int) bool { return n < 3 })
	got := Collect(cur)
	want := []int{1, 2}
	assert.DeepEqual(t, got, want)
	_, ok := cur.Next()
	assert.Equal(t, ok, false)
}

func TestSkip_DropsFirstN(t *testing.T) {
	got := Collect(Skip(Of(1, 2, 3, 4, 5), 2))
	want := []int{3, 4, 5}
	assert.DeepEqual(t, got, want)
}

func TestSkip_MoreThanLength(t *testing.T) {
	got := Collect(Skip(Of(1, 2), 5))
	assert.Equal(t, len(got), 0)
}

func TestTake_FirstN(t *testing.T) {
	got := Collect(Take(Of(1, 2, 3, 4, 5), 3))
	want := []int{1, 2, 3}
	assert.DeepEqual(t, got, want)
}

func TestTake_ConsumesExactlyN(t *testing.T) {
	cur := Of(1, 2, 3, 4, 5).IntoCursor()
	got := Collect(Take(cur, 2))
	want := []int{1, 2}
	assert.DeepEqual(t, got, want)
	rest := Collect(cur)
	wantRest := []int{3, 4, 5}
	assert.DeepEqual(t, rest, wantRest)
}

func TestTake_Zero(t *testing.T) {
	got := Collect(Take(Of(1, 2, 3), 0))
	assert.Equal(t, len(got), 0)
}

func TestStepBy_Two(t *testing.T) {
	got := Collect(StepBy(Of(0, 1, 2, 3, 4, 5), 2))
	want := []int{0, 2, 4}
	assert.DeepEqual(t, got, want)
}

func TestStepBy_One(t *testing.T) {
	got := Collect(StepBy(Of(1, 2, 3), 1))
	want := []int{1, 2, 3}
	assert.DeepEqual(t, got, want)
}

func TestStepBy_LargerThanLength(t *testing.T) {
	got := Collect(StepBy(Of(1, 2, 3), 10))
	want := []int{1}
	assert.DeepEqual(t, got, want)
}

func TestStepBy_ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StepBy with step 0 did not panic")
		}
	}()
	StepBy(Of(1, 2, 3), 0)
}
