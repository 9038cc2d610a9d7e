package fixedseq

import (
	"golang.org/x/exp/constraints"
)

// App calls f on every element, left to right. Results are discarded; App is
// for side effects only.
func (a *Array[T]) App(f func(v T)) {
	for _, v := range a.elements {
		f(v)
	}
}

// AppIndexed is App with the index passed to f.
func (a *Array[T]) AppIndexed(f func(i int, v T)) {
	for i, v := range a.elements {
		f(i, v)
	}
}

// Modify replaces every slot with f applied to its current value, left to
// right. Each slot is written before f is called on the next index, so f
// observes already-updated predecessors if it re-reads the array.
func (a *Array[T]) Modify(f func(v T) T) {
	for i := range a.elements {
		a.elements[i] = f(a.elements[i])
	}
}

// ModifyIndexed is Modify with the index passed to f.
func (a *Array[T]) ModifyIndexed(f func(i int, v T) T) {
	for i := range a.elements {
		a.elements[i] = f(i, a.elements[i])
	}
}

// FoldLeft accumulates over the array left to right:
// acc0 = init, acc(i+1) = f(element i, acc(i)).
func FoldLeft[T, A any](a *Array[T], init A, f func(v T, acc A) A) A {
	acc := init
	for _, v := range a.elements {
		acc = f(v, acc)
	}
	return acc
}

// FoldLeftIndexed is FoldLeft with the index passed to f.
func FoldLeftIndexed[T, A any](a *Array[T], init A, f func(i int, v T, acc A) A) A {
	acc := init
	for i, v := range a.elements {
		acc = f(i, v, acc)
	}
	return acc
}

// FoldRight accumulates over the array from the last index down to 0.
func FoldRight[T, A any](a *Array[T], init A, f func(v T, acc A) A) A {
	acc := init
	for i := len(a.elements) - 1; i >= 0; i-- {
		acc = f(a.elements[i], acc)
	}
	return acc
}

// FoldRightIndexed is FoldRight with the index passed to f.
func FoldRightIndexed[T, A any](a *Array[T], init A, f func(i int, v T, acc A) A) A {
	acc := init
	for i := len(a.elements) - 1; i >= 0; i-- {
		acc = f(i, a.elements[i], acc)
	}
	return acc
}

// Find scans left to right and returns the first element satisfying pred.
// pred is not called past the first match.
func (a *Array[T]) Find(pred func(v T) bool) (result T, ok bool) {
	for _, v := range a.elements {
		if pred(v) {
			return v, true
		}
	}
	return
}

// FindIndexed is Find with the matching index also returned.
func (a *Array[T]) FindIndexed(pred func(i int, v T) bool) (index int, result T, ok bool) {
	for i, v := range a.elements {
		if pred(i, v) {
			return i, v, true
		}
	}
	index = -1
	return
}

// Exists reports whether some element satisfies pred; it stops at the first
// one that does.
func (a *Array[T]) Exists(pred func(v T) bool) bool {
	for _, v := range a.elements {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred; it stops at the first one
// that does not. All is vacuously true on a zero-length array.
func (a *Array[T]) All(pred func(v T) bool) bool {
	for _, v := range a.elements {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Collate compares a1 and a2 lexicographically using cmp, which must return a
// negative, zero or positive int for less, equal, greater. The first index
// where cmp is non-zero decides; on a common prefix the shorter array is
// less. Collate never fails, whatever the lengths.
func Collate[T any](cmp func(v1, v2 T) int, a1, a2 *Array[T]) int {
	return collateSlices(cmp, a1.elements, a2.elements)
}

func collateSlices[T any](cmp func(v1, v2 T) int, s1, s2 []T) int {
	minLen := len(s1)
	if len(s2) < minLen {
		minLen = len(s2)
	}
	for i := 0; i < minLen; i++ {
		if r := cmp(s1[i], s2[i]); r != 0 {
			return r
		}
	}
	switch {
	case len(s1) < len(s2):
		return -1
	case len(s1) > len(s2):
		return 1
	default:
		return 0
	}
}

// CompareOrdered is a ready-made comparator for Collate over ordered element
// types.
func CompareOrdered[T constraints.Ordered](v1, v2 T) int {
	switch {
	case v1 < v2:
		return -1
	case v1 > v2:
		return 1
	default:
		return 0
	}
}
