package internal

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// SaturatingAdd adds a and b, clamping the result to limit.
// Either operand already at or above limit yields limit, so an "infinite"
// sentinel stays infinite instead of overflowing.
func SaturatingAdd(a, b, limit int) int {
	if a >= limit || b >= limit {
		return limit
	}
	if sum := a + b; sum < limit {
		return sum
	}
	return limit
}
