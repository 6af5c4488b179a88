package util

import "math"

// SafeSubtract returns a-b, flooring at zero instead of wrapping on
// underflow. Callers that need to distinguish "zero" from "would have been
// negative" must guard the inputs themselves.
func SafeSubtract(a, b uint32) uint32 {
	if b > a {
		return 0
	}

	return a - b
}

// SafeAdd returns a+b, saturating at the maximum uint32 value instead of
// wrapping.
func SafeAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}

	return a + b
}
