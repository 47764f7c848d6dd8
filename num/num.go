// Package num implements various utility functions regarding numeric types.
package num

import "math/bits"

// IsPowerOfTwo returns whether x is a power of two.
// Returns false if x <= 0.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)).
// Panics if x <= 0.
func Log2(x int) int {
	if x <= 0 {
		panic("log2 undefined for nonpositive values")
	}
	return bits.Len(uint(x)) - 1
}

// CeilLog2 returns ceil(log2(x)).
// Panics if x <= 0.
func CeilLog2(x int) int {
	if IsPowerOfTwo(x) {
		return Log2(x)
	}
	return Log2(x) + 1
}

// NextPowerOfTwo returns the smallest power of two not less than x.
// Panics if x <= 0.
func NextPowerOfTwo(x int) int {
	return 1 << CeilLog2(x)
}
