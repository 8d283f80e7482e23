package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsPowerOfTwo - Returns true if n is a positive power of two
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 - Returns the base two logarithm of n, where n must be a positive power of two
func Log2(n int64) int64 {
	var exp int64
	for n > 1 {
		n >>= 1
		exp++
	}
	return exp
}
