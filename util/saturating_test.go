package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeSubtract(t *testing.T) {
	assert.Equal(t, uint32(5), SafeSubtract(10, 5))
	assert.Equal(t, uint32(0), SafeSubtract(5, 5))
	assert.Equal(t, uint32(0), SafeSubtract(5, 10))
	assert.Equal(t, uint32(0), SafeSubtract(0, math.MaxUint32))
}

func TestSafeAdd(t *testing.T) {
	assert.Equal(t, uint32(15), SafeAdd(10, 5))
	assert.Equal(t, uint32(math.MaxUint32), SafeAdd(math.MaxUint32, 0))
	assert.Equal(t, uint32(math.MaxUint32), SafeAdd(math.MaxUint32, 1))
	assert.Equal(t, uint32(math.MaxUint32), SafeAdd(math.MaxUint32-1, 2))
}
