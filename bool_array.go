package fixedseq

import (
	"github.com/bits-and-blooms/bitset"
)

// A BoolArray is an Array[bool] packed into a bitset, one bit per slot. It
// has the same identity-equality and bounds contracts as Array.
type BoolArray struct {
	bits    *bitset.BitSet
	length  int
	allocID uint64
}

func newBoolArray(bits *bitset.BitSet, length int) *BoolArray {
	a := &BoolArray{bits: bits, length: length, allocID: nextAllocID()}
	traceAlloc(allocKindBoolArray, a.allocID, length)
	return a
}

// NewBoolArray allocates a packed array of length n with every slot set to
// init.
// It panics with ErrSize if n < 0 or n > MaxLen.
func NewBoolArray(n int, init bool) *BoolArray {
	bits := bitset.New(uint(checkSize(n)))
	if init {
		for i := 0; i < n; i++ {
			bits.Set(uint(i))
		}
	}
	return newBoolArray(bits, n)
}

// BoolArrayFromSlice allocates a packed array holding the elements of items
// in order.
// It panics with ErrSize if len(items) > MaxLen.
func BoolArrayFromSlice(items []bool) *BoolArray {
	n := checkSize(len(items))
	bits := bitset.New(uint(n))
	for i, b := range items {
		bits.SetTo(uint(i), b)
	}
	return newBoolArray(bits, n)
}

// TabulateBools allocates a packed array of length n whose slot i holds f(i),
// with f called in ascending index order.
// It panics with ErrSize if n < 0 or n > MaxLen.
func TabulateBools(n int, f func(i int) bool) *BoolArray {
	bits := bitset.New(uint(checkSize(n)))
	for i := 0; i < n; i++ {
		bits.SetTo(uint(i), f(i))
	}
	return newBoolArray(bits, n)
}

// Len returns the fixed length of the array.
func (a *BoolArray) Len() int {
	return a.length
}

// At returns the element at index i.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (a *BoolArray) At(i int) bool {
	checkIndex(i, a.length)
	return a.bits.Test(uint(i))
}

// Set stores v at index i.
// It panics with ErrSubscript if i < 0 or i >= Len().
func (a *BoolArray) Set(i int, v bool) {
	checkIndex(i, a.length)
	a.bits.SetTo(uint(i), v)
}

// Equal reports whether other is the same allocation as a; contents are never
// compared.
func (a *BoolArray) Equal(other *BoolArray) bool {
	return other != nil && a.allocID == other.allocID
}

// AllocID returns the array's allocation tag.
func (a *BoolArray) AllocID() uint64 {
	return a.allocID
}

// Vector returns a read-only snapshot of the array's elements.
func (a *BoolArray) Vector() Vector[bool] {
	elements := make([]bool, a.length)
	for i := range elements {
		elements[i] = a.bits.Test(uint(i))
	}
	return Vector[bool]{elements: elements}
}

// CopyBools copies every element of src into dst, placing src element i at
// dst index startIndex+i, as if all reads preceded all writes. Same bounds
// and self-copy rules as Copy.
func CopyBools(src, dst *BoolArray, startIndex int) {
	checkCopyRange(startIndex, src.length, dst.length)
	for i := 0; i < src.length; i++ {
		dst.bits.SetTo(uint(startIndex+i), src.bits.Test(uint(i)))
	}
}

// CopyBoolVector copies every element of src into dst, placing src element i
// at dst index startIndex+i. Same bounds rule as CopyVector.
func CopyBoolVector(src Vector[bool], dst *BoolArray, startIndex int) {
	checkCopyRange(startIndex, len(src.elements), dst.length)
	for i, b := range src.elements {
		dst.bits.SetTo(uint(startIndex+i), b)
	}
}

// App calls f on every element, left to right, for side effects only.
func (a *BoolArray) App(f func(v bool)) {
	for i := 0; i < a.length; i++ {
		f(a.bits.Test(uint(i)))
	}
}

// AppIndexed is App with the index passed to f.
func (a *BoolArray) AppIndexed(f func(i int, v bool)) {
	for i := 0; i < a.length; i++ {
		f(i, a.bits.Test(uint(i)))
	}
}

// Modify replaces every slot with f applied to its current value, left to
// right, committing each slot before the next call.
func (a *BoolArray) Modify(f func(v bool) bool) {
	for i := 0; i < a.length; i++ {
		a.bits.SetTo(uint(i), f(a.bits.Test(uint(i))))
	}
}

// ModifyIndexed is Modify with the index passed to f.
func (a *BoolArray) ModifyIndexed(f func(i int, v bool) bool) {
	for i := 0; i < a.length; i++ {
		a.bits.SetTo(uint(i), f(i, a.bits.Test(uint(i))))
	}
}

// Find scans left to right and returns the first element satisfying pred,
// without calling pred past the first match.
func (a *BoolArray) Find(pred func(v bool) bool) (result bool, ok bool) {
	for i := 0; i < a.length; i++ {
		if v := a.bits.Test(uint(i)); pred(v) {
			return v, true
		}
	}
	return
}

// FindIndexed is Find with the matching index also returned.
func (a *BoolArray) FindIndexed(pred func(i int, v bool) bool) (index int, result bool, ok bool) {
	for i := 0; i < a.length; i++ {
		if v := a.bits.Test(uint(i)); pred(i, v) {
			return i, v, true
		}
	}
	index = -1
	return
}

// Exists reports whether some element satisfies pred; stops at the first one
// that does.
func (a *BoolArray) Exists(pred func(v bool) bool) bool {
	for i := 0; i < a.length; i++ {
		if pred(a.bits.Test(uint(i))) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies pred; stops at the first one
// that does not.
func (a *BoolArray) All(pred func(v bool) bool) bool {
	for i := 0; i < a.length; i++ {
		if !pred(a.bits.Test(uint(i))) {
			return false
		}
	}
	return true
}

// FoldLeftBools accumulates left to right:
// acc0 = init, acc(i+1) = f(element i, acc(i)).
func FoldLeftBools[A any](a *BoolArray, init A, f func(v bool, acc A) A) A {
	acc := init
	for i := 0; i < a.length; i++ {
		acc = f(a.bits.Test(uint(i)), acc)
	}
	return acc
}

// FoldRightBools accumulates from the last index down to 0.
func FoldRightBools[A any](a *BoolArray, init A, f func(v bool, acc A) A) A {
	acc := init
	for i := a.length - 1; i >= 0; i-- {
		acc = f(a.bits.Test(uint(i)), acc)
	}
	return acc
}

// CollateBools compares a1 and a2 lexicographically using cmp, with the same
// rules as Collate.
func CollateBools(cmp func(v1, v2 bool) int, a1, a2 *BoolArray) int {
	minLen := a1.length
	if a2.length < minLen {
		minLen = a2.length
	}
	for i := 0; i < minLen; i++ {
		if r := cmp(a1.bits.Test(uint(i)), a2.bits.Test(uint(i))); r != 0 {
			return r
		}
	}
	switch {
	case a1.length < a2.length:
		return -1
	case a1.length > a2.length:
		return 1
	default:
		return 0
	}
}
