package fixedseq

import (
	"errors"
	"math"
)

// MaxLen is the maximum supported length of an Array, BoolArray or Vector.
const MaxLen = math.MaxInt32

var (
	ErrSize      = errors.New("size out of supported range")
	ErrSubscript = errors.New("subscript out of range")
)

// checkSize panics with ErrSize if n is not a valid length. It returns n so
// constructors can use it inline.
func checkSize(n int) int {
	if n < 0 || n > MaxLen {
		panic(ErrSize)
	}
	return n
}

func checkIndex(i, length int) {
	if i < 0 || i >= length {
		panic(ErrSubscript)
	}
}

// checkCopyRange validates the destination range of a copy of srcLen elements
// starting at startIndex. The subtraction form avoids overflow on large
// startIndex values.
func checkCopyRange(startIndex, srcLen, dstLen int) {
	if startIndex < 0 || startIndex > dstLen-srcLen {
		panic(ErrSubscript)
	}
}
