package fixedseq

import (
	"slices"
)

// A Vector is a fixed-length read-only sequence with structural semantics:
// unlike Array, it carries no identity and two vectors with the same elements
// are interchangeable. Vectors are the conversion source/target for arrays.
type Vector[T any] struct {
	elements []T
}

// VectorOf returns a vector holding the given elements in order.
func VectorOf[T any](items ...T) Vector[T] {
	return VectorFromSlice(items)
}

// VectorFromSlice returns a vector holding the elements of items in order,
// sharing no storage with items.
// It panics with ErrSize if len(items) > MaxLen.
func VectorFromSlice[T any](items []T) Vector[T] {
	checkSize(len(items))
	return Vector[T]{elements: slices.Clone(items)}
}

// TabulateVector returns a vector of length n whose element i is f(i),
// with f called in ascending index order.
// It panics with ErrSize if n < 0 or n > MaxLen.
func TabulateVector[T any](n int, f func(i int) T) Vector[T] {
	elements := make([]T, checkSize(n))
	for i := 0; i < n; i++ {
		elements[i] = f(i)
	}
	return Vector[T]{elements: elements}
}

// Concat returns the concatenation of the given vectors.
// It panics with ErrSize if the total length exceeds MaxLen.
func Concat[T any](vs ...Vector[T]) Vector[T] {
	total := 0
	for _, v := range vs {
		total += len(v.elements)
		checkSize(total)
	}
	elements := make([]T, 0, total)
	for _, v := range vs {
		elements = append(elements, v.elements...)
	}
	return Vector[T]{elements: elements}
}

// Len returns the length of the vector.
func (v Vector[T]) Len() int {
	return len(v.elements)
}

// At returns the element at index i.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (v Vector[T]) At(i int) T {
	checkIndex(i, len(v.elements))
	return v.elements[i]
}

// With returns a new vector equal to v except that element i is x. v itself
// is unchanged.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (v Vector[T]) With(i int, x T) Vector[T] {
	checkIndex(i, len(v.elements))
	elements := slices.Clone(v.elements)
	elements[i] = x
	return Vector[T]{elements: elements}
}

// Slice returns a copy of the vector's elements.
func (v Vector[T]) Slice() []T {
	return slices.Clone(v.elements)
}

// EqualFunc reports whether v and other have the same length and eq holds for
// every pair of corresponding elements. Two zero-length vectors are equal.
func (v Vector[T]) EqualFunc(other Vector[T], eq func(v1, v2 T) bool) bool {
	if len(v.elements) != len(other.elements) {
		return false
	}
	for i, e := range v.elements {
		if !eq(e, other.elements[i]) {
			return false
		}
	}
	return true
}

// App calls f on every element, left to right, for side effects only.
func (v Vector[T]) App(f func(v T)) {
	for _, e := range v.elements {
		f(e)
	}
}

// AppIndexed is App with the index passed to f.
func (v Vector[T]) AppIndexed(f func(i int, v T)) {
	for i, e := range v.elements {
		f(i, e)
	}
}

// Find scans left to right and returns the first element satisfying pred,
// without calling pred past the first match.
func (v Vector[T]) Find(pred func(v T) bool) (result T, ok bool) {
	for _, e := range v.elements {
		if pred(e) {
			return e, true
		}
	}
	return
}

// FindIndexed is Find with the matching index also returned.
func (v Vector[T]) FindIndexed(pred func(i int, v T) bool) (index int, result T, ok bool) {
	for i, e := range v.elements {
		if pred(i, e) {
			return i, e, true
		}
	}
	index = -1
	return
}

// Exists reports whether some element satisfies pred; stops at the first one
// that does.
func (v Vector[T]) Exists(pred func(v T) bool) bool {
	for _, e := range v.elements {
		if pred(e) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred; stops at the first one
// that does not.
func (v Vector[T]) All(pred func(v T) bool) bool {
	for _, e := range v.elements {
		if !pred(e) {
			return false
		}
	}
	return true
}

// MapVector returns a fresh vector whose element i is f applied to v's
// element i, with f called in ascending index order.
func MapVector[T, U any](v Vector[T], f func(v T) U) Vector[U] {
	elements := make([]U, len(v.elements))
	for i, e := range v.elements {
		elements[i] = f(e)
	}
	return Vector[U]{elements: elements}
}

// MapVectorIndexed is MapVector with the index passed to f.
func MapVectorIndexed[T, U any](v Vector[T], f func(i int, v T) U) Vector[U] {
	elements := make([]U, len(v.elements))
	for i, e := range v.elements {
		elements[i] = f(i, e)
	}
	return Vector[U]{elements: elements}
}

// FoldLeftVector accumulates left to right:
// acc0 = init, acc(i+1) = f(element i, acc(i)).
func FoldLeftVector[T, A any](v Vector[T], init A, f func(v T, acc A) A) A {
	acc := init
	for _, e := range v.elements {
		acc = f(e, acc)
	}
	return acc
}

// FoldLeftVectorIndexed is FoldLeftVector with the index passed to f.
func FoldLeftVectorIndexed[T, A any](v Vector[T], init A, f func(i int, v T, acc A) A) A {
	acc := init
	for i, e := range v.elements {
		acc = f(i, e, acc)
	}
	return acc
}

// FoldRightVector accumulates from the last index down to 0.
func FoldRightVector[T, A any](v Vector[T], init A, f func(v T, acc A) A) A {
	acc := init
	for i := len(v.elements) - 1; i >= 0; i-- {
		acc = f(v.elements[i], acc)
	}
	return acc
}

// FoldRightVectorIndexed is FoldRightVector with the index passed to f.
func FoldRightVectorIndexed[T, A any](v Vector[T], init A, f func(i int, v T, acc A) A) A {
	acc := init
	for i := len(v.elements) - 1; i >= 0; i-- {
		acc = f(i, v.elements[i], acc)
	}
	return acc
}

// CollateVectors compares v1 and v2 lexicographically using cmp, with the
// same rules as Collate.
func CollateVectors[T any](cmp func(v1, v2 T) int, v1, v2 Vector[T]) int {
	return collateSlices(cmp, v1.elements, v2.elements)
}
