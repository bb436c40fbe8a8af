// SPDX-License-Identifier: EPL-2.0

package utils

// LargestMultipleLEQ returns the largest multiple of size that is less than
// or equal to n, i.e. floor(n / size) * size.
//
// size must be positive and n must not be negative; callers validate size
// once at construction time so the hot path stays branch free.
func LargestMultipleLEQ(size, n int) int {
	return n / size * size
}

// IsAligned reports whether n is a multiple of size.
func IsAligned(size, n int) bool {
	return n%size == 0
}
