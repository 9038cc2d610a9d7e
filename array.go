// Package fixedseq implements fixed-length mutable arrays with identity
// equality, alongside read-only vectors with structural semantics.
package fixedseq

import (
	"slices"
	"sync/atomic"
)

var allocCounter atomic.Uint64

// nextAllocID returns a process-unique allocation tag. Tags make identity
// observable even for zero-length arrays, where comparing backing storage
// would not distinguish separate allocations.
func nextAllocID() uint64 {
	return allocCounter.Add(1)
}

// An Array is a fixed-length mutable sequence with identity equality: two
// arrays are equal only if they come from the same construction call, never
// by comparing contents. The length never changes after construction.
// Arrays are not safe for concurrent mutation; coordination is up to the
// caller.
type Array[T any] struct {
	elements []T
	allocID  uint64
}

func newArray[T any](elements []T) *Array[T] {
	a := &Array[T]{elements: elements, allocID: nextAllocID()}
	traceAlloc(allocKindArray, a.allocID, len(elements))
	return a
}

// New allocates an array of length n with every slot set to init.
// It panics with ErrSize if n < 0 or n > MaxLen.
func New[T any](n int, init T) *Array[T] {
	elements := make([]T, checkSize(n))
	for i := range elements {
		elements[i] = init
	}
	return newArray(elements)
}

// FromSlice allocates an array containing the elements of items in order.
// The array does not share storage with items.
// It panics with ErrSize if len(items) > MaxLen.
func FromSlice[T any](items []T) *Array[T] {
	checkSize(len(items))
	return newArray(slices.Clone(items))
}

// Tabulate allocates an array of length n whose slot i holds f(i). f is
// called for i = 0, 1, ..., n-1 in that order; the order is part of the
// contract, f may have side effects.
// It panics with ErrSize if n < 0 or n > MaxLen.
func Tabulate[T any](n int, f func(i int) T) *Array[T] {
	elements := make([]T, checkSize(n))
	for i := 0; i < n; i++ {
		elements[i] = f(i)
	}
	return newArray(elements)
}

// Len returns the fixed length of the array.
func (a *Array[T]) Len() int {
	return len(a.elements)
}

// At returns the element at index i.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (a *Array[T]) At(i int) T {
	checkIndex(i, len(a.elements))
	return a.elements[i]
}

// Set stores v at index i. The write is visible through every alias of the
// array as soon as Set returns.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (a *Array[T]) Set(i int, v T) {
	checkIndex(i, len(a.elements))
	a.elements[i] = v
}

// Equal reports whether other is the same allocation as a. Contents are never
// compared: arrays built by separate construction calls are unequal even when
// both have length zero.
func (a *Array[T]) Equal(other *Array[T]) bool {
	return other != nil && a.allocID == other.allocID
}

// AllocID returns the array's allocation tag, a process-unique identifier
// assigned at construction.
func (a *Array[T]) AllocID() uint64 {
	return a.allocID
}

// Vector returns a read-only snapshot of the array's elements, built by a
// single left-to-right pass. The result shares no storage with the array:
// later Sets are not observable through it.
func (a *Array[T]) Vector() Vector[T] {
	return Vector[T]{elements: slices.Clone(a.elements)}
}

// Copy copies every element of src into dst, placing src element i at
// dst index startIndex+i. The result is as if all reads of src happened
// before any write to dst. When src and dst are the same allocation their
// lengths are equal, so the only startIndex that passes the bounds check is
// 0, and that copy leaves dst unchanged.
// It panics with ErrSubscript if startIndex < 0 or startIndex+src.Len() > dst.Len();
// dst is unmodified in that case.
func Copy[T any](src, dst *Array[T], startIndex int) {
	checkCopyRange(startIndex, len(src.elements), len(dst.elements))
	copy(dst.elements[startIndex:], src.elements)
}

// CopyVector copies every element of src into dst, placing src element i at
// dst index startIndex+i.
// It panics with ErrSubscript if startIndex < 0 or startIndex+src.Len() > dst.Len();
// dst is unmodified in that case.
func CopyVector[T any](src Vector[T], dst *Array[T], startIndex int) {
	checkCopyRange(startIndex, len(src.elements), len(dst.elements))
	copy(dst.elements[startIndex:], src.elements)
}

// Iterator returns an iterator over a snapshot of the array's current
// elements. Mutations after the call are not observed.
func (a *Array[T]) Iterator() *ArrayIterator[T] {
	return &ArrayIterator[T]{
		index:    -1,
		elements: slices.Clone(a.elements),
	}
}

type ArrayIterator[T any] struct {
	index    int
	elements []T
}

func (it *ArrayIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *ArrayIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *ArrayIterator[T]) Index() int {
	return it.index
}
