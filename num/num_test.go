package num_test

import (
	"testing"

	"github.com/sp301415/plonkish/num"
	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, num.IsPowerOfTwo(1))
	assert.True(t, num.IsPowerOfTwo(64))
	assert.False(t, num.IsPowerOfTwo(0))
	assert.False(t, num.IsPowerOfTwo(-4))
	assert.False(t, num.IsPowerOfTwo(12))
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, num.Log2(1))
	assert.Equal(t, 3, num.Log2(8))
	assert.Equal(t, 3, num.Log2(15))
	assert.Equal(t, 4, num.Log2(16))
}

func TestCeilLog2(t *testing.T) {
	assert.Equal(t, 0, num.CeilLog2(1))
	assert.Equal(t, 3, num.CeilLog2(8))
	assert.Equal(t, 4, num.CeilLog2(9))
	assert.Equal(t, 4, num.CeilLog2(16))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, num.NextPowerOfTwo(1))
	assert.Equal(t, 16, num.NextPowerOfTwo(10))
	assert.Equal(t, 16, num.NextPowerOfTwo(16))
}
