package hashmap

// HashUint64 is a general-purpose integer mixing function (Bob Jenkins).
// It is not cryptographic; it only spreads nearby keys across buckets.
func HashUint64(a uint64) uint64 {
	a -= a << 6
	a ^= a >> 17
	a -= a << 9
	a ^= a << 4
	a -= a << 3
	a ^= a << 10
	a ^= a >> 15
	return a
}

// HashString hashes a string key by loading its leading bytes into a word,
// folding in any remainder, and mixing the result with HashUint64.
func HashString(s string) uint64 {
	var a uint64
	n := len(s)
	if n > 8 {
		n = 8
	}
	for i := 0; i < n; i++ {
		a |= uint64(s[i]) << (8 * uint(i))
	}
	for i := 8; i < len(s); i++ {
		a = a<<5 - a + uint64(s[i])
	}
	return HashUint64(a)
}

// EqualStrings is the key-equality function for string keys.
func EqualStrings(a, b string) bool {
	return a == b
}
