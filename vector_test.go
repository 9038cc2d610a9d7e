package fixedseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intEq(a, b int) bool { return a == b }

func TestVectorConstruction(t *testing.T) {

	t.Run("VectorOf preserves order", func(t *testing.T) {
		v := VectorOf(1, 2, 3)
		require.Equal(t, 3, v.Len())
		assert.Equal(t, []int{1, 2, 3}, v.Slice())
	})

	t.Run("VectorFromSlice shares no storage with the input", func(t *testing.T) {
		items := []int{1, 2}
		v := VectorFromSlice(items)

		items[0] = 100
		assert.Equal(t, 1, v.At(0))
	})

	t.Run("TabulateVector calls f in ascending index order", func(t *testing.T) {
		var calls []int
		v := TabulateVector(3, func(i int) int {
			calls = append(calls, i)
			return i + 1
		})
		assert.Equal(t, []int{0, 1, 2}, calls)
		assert.Equal(t, []int{1, 2, 3}, v.Slice())
	})

	t.Run("TabulateVector negative length", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrSize, func() {
			TabulateVector(-1, func(i int) int { return i })
		})
	})

	t.Run("TabulateVector length above MaxLen", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrSize, func() {
			TabulateVector(MaxLen+1, func(i int) int { return i })
		})
	})
}

func TestVectorStructuralEquality(t *testing.T) {

	t.Run("same elements compare equal", func(t *testing.T) {
		v1 := VectorOf(1, 2, 3)
		v2 := VectorOf(1, 2, 3)
		assert.True(t, v1.EqualFunc(v2, intEq))
	})

	t.Run("zero-length vectors compare equal", func(t *testing.T) {
		//unlike zero-length arrays
		assert.True(t, VectorOf[int]().EqualFunc(VectorOf[int](), intEq))
	})

	t.Run("different lengths or elements are unequal", func(t *testing.T) {
		assert.False(t, VectorOf(1, 2).EqualFunc(VectorOf(1, 2, 3), intEq))
		assert.False(t, VectorOf(1, 2).EqualFunc(VectorOf(1, 3), intEq))
	})
}

func TestVectorAt(t *testing.T) {
	v := VectorOf(1, 2)

	assert.Equal(t, 2, v.At(1))
	assert.PanicsWithValue(t, ErrSubscript, func() {
		v.At(-1)
	})
	assert.PanicsWithValue(t, ErrSubscript, func() {
		v.At(2)
	})
}

func TestVectorWith(t *testing.T) {

	t.Run("returns an updated copy, original unchanged", func(t *testing.T) {
		v := VectorOf(1, 2, 3)
		updated := v.With(1, 20)

		assert.Equal(t, []int{1, 20, 3}, updated.Slice())
		assert.Equal(t, []int{1, 2, 3}, v.Slice())
	})

	t.Run("out-of-range index", func(t *testing.T) {
		v := VectorOf(1)
		assert.PanicsWithValue(t, ErrSubscript, func() {
			v.With(1, 0)
		})
	})
}

func TestConcat(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		v := Concat(VectorOf(1, 2), VectorOf[int](), VectorOf(3))
		assert.Equal(t, []int{1, 2, 3}, v.Slice())
	})

	t.Run("no arguments", func(t *testing.T) {
		v := Concat[int]()
		assert.Equal(t, 0, v.Len())
	})

	t.Run("result shares no storage with the inputs", func(t *testing.T) {
		v1 := VectorOf(1, 2)
		concatenated := Concat(v1)
		updated := concatenated.With(0, 100)

		assert.Equal(t, 1, v1.At(0))
		assert.Equal(t, 100, updated.At(0))
	})
}

func TestVectorTraversal(t *testing.T) {
	v := VectorOf(1, 2, 3)

	t.Run("App is left to right", func(t *testing.T) {
		var seen []int
		v.App(func(e int) {
			seen = append(seen, e)
		})
		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("AppIndexed passes indexes", func(t *testing.T) {
		var indexes []int
		v.AppIndexed(func(i int, e int) {
			indexes = append(indexes, i)
		})
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})

	t.Run("MapVector", func(t *testing.T) {
		mapped := MapVector(v, func(e int) string {
			return string(rune('a' + e))
		})
		assert.Equal(t, []string{"b", "c", "d"}, mapped.Slice())
	})

	t.Run("MapVectorIndexed", func(t *testing.T) {
		mapped := MapVectorIndexed(v, func(i int, e int) int { return i * e })
		assert.Equal(t, []int{0, 2, 6}, mapped.Slice())
	})

	t.Run("folds", func(t *testing.T) {
		left := FoldLeftVector(v, []int(nil), func(e int, acc []int) []int {
			return append(acc, e)
		})
		assert.Equal(t, []int{1, 2, 3}, left)

		right := FoldRightVector(v, []int(nil), func(e int, acc []int) []int {
			return append(acc, e)
		})
		assert.Equal(t, []int{3, 2, 1}, right)

		leftIndexes := FoldLeftVectorIndexed(v, []int(nil), func(i int, e int, acc []int) []int {
			return append(acc, i)
		})
		assert.Equal(t, []int{0, 1, 2}, leftIndexes)

		rightIndexes := FoldRightVectorIndexed(v, []int(nil), func(i int, e int, acc []int) []int {
			return append(acc, i)
		})
		assert.Equal(t, []int{2, 1, 0}, rightIndexes)
	})
}

func TestVectorSearch(t *testing.T) {
	v := VectorOf(4, 9, 2, 9)

	t.Run("Find returns the first match", func(t *testing.T) {
		e, ok := v.Find(func(e int) bool { return e > 5 })
		require.True(t, ok)
		assert.Equal(t, 9, e)

		i, e, ok := v.FindIndexed(func(i int, e int) bool { return e > 5 })
		require.True(t, ok)
		assert.Equal(t, 1, i)
		assert.Equal(t, 9, e)
	})

	t.Run("Find short-circuits", func(t *testing.T) {
		calls := 0
		v.Find(func(e int) bool {
			calls++
			return e > 5
		})
		assert.Equal(t, 2, calls)
	})

	t.Run("Exists and All", func(t *testing.T) {
		assert.True(t, v.Exists(func(e int) bool { return e == 2 }))
		assert.False(t, v.Exists(func(e int) bool { return e > 100 }))
		assert.True(t, v.All(func(e int) bool { return e > 0 }))
		assert.False(t, v.All(func(e int) bool { return e > 5 }))
	})
}

func TestCollateVectors(t *testing.T) {
	assert.Negative(t, CollateVectors(CompareOrdered[int], VectorOf(1, 2), VectorOf(1, 2, 3)))
	assert.Positive(t, CollateVectors(CompareOrdered[int], VectorOf(1, 3), VectorOf(1, 2)))
	assert.Zero(t, CollateVectors(CompareOrdered[int], VectorOf(1, 2), VectorOf(1, 2)))
}
