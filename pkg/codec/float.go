package codec

import "math"

// Pack754 encodes a floating point number into an IEEE-754 bit layout of
// the given total and exponent widths. The significand is normalized into
// [1,2) by repeated doubling or halving, which keeps the result independent
// of the host's native float representation. Zero encodes as all-zero bits;
// infinities and NaN encode through the all-ones exponent escape.
func Pack754(f float64, bits, expbits uint) uint64 {
	significandbits := bits - expbits - 1 // -1 for sign bit

	if f == 0.0 {
		return 0
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		var sign uint64
		if math.Signbit(f) {
			sign = 1
		}
		exp := uint64(1)<<expbits - 1
		var significand uint64
		if math.IsNaN(f) {
			significand = uint64(1) << (significandbits - 1)
		}
		return sign<<(bits-1) | exp<<(bits-expbits-1) | significand
	}

	var sign uint64
	fnorm := f
	if f < 0 {
		sign = 1
		fnorm = -f
	}

	// normalize and track the exponent
	shift := 0
	for fnorm >= 2.0 {
		fnorm /= 2.0
		shift++
	}
	for fnorm < 1.0 {
		fnorm *= 2.0
		shift--
	}
	fnorm = fnorm - 1.0

	significand := uint64(fnorm * (float64(uint64(1)<<significandbits) + 0.5))

	// biased exponent
	exp := uint64(shift + (1<<(expbits-1) - 1))

	return sign<<(bits-1) | exp<<(bits-expbits-1) | significand
}

// Unpack754 decodes an IEEE-754 bit layout of the given total and exponent
// widths back into a floating point number. Exact inverse of Pack754.
func Unpack754(i uint64, bits, expbits uint) float64 {
	significandbits := bits - expbits - 1 // -1 for sign bit

	if i == 0 {
		return 0.0
	}

	if i>>significandbits&(uint64(1)<<expbits-1) == uint64(1)<<expbits-1 {
		if i&(uint64(1)<<significandbits-1) != 0 {
			return math.NaN()
		}
		if i>>(bits-1)&1 == 1 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// pull the significand and add the leading one back on
	result := float64(i & (uint64(1)<<significandbits - 1))
	result /= float64(uint64(1) << significandbits)
	result += 1.0

	bias := int64(1<<(expbits-1) - 1)
	shift := int64(i>>significandbits&(uint64(1)<<expbits-1)) - bias
	for shift > 0 {
		result *= 2.0
		shift--
	}
	for shift < 0 {
		result /= 2.0
		shift++
	}

	if i>>(bits-1)&1 == 1 {
		result = -result
	}

	return result
}

// PackFloat32 stores a 32-bit float into buf as packed IEEE-754 bits.
func PackFloat32(buf []byte, f float32) {
	fhold := Pack754(float64(f), 32, 8)
	PackInt32(buf, uint32(fhold))
}

// UnpackFloat32 reads a packed 32-bit float from buf.
func UnpackFloat32(buf []byte) float32 {
	fhold := uint64(UnpackUint32(buf))
	return float32(Unpack754(fhold, 32, 8))
}

// PackFloat64 stores a 64-bit float into buf as packed IEEE-754 bits.
func PackFloat64(buf []byte, f float64) {
	fhold := Pack754(f, 64, 11)
	PackInt64(buf, fhold)
}

// UnpackFloat64 reads a packed 64-bit float from buf.
func UnpackFloat64(buf []byte) float64 {
	fhold := UnpackUint64(buf)
	return Unpack754(fhold, 64, 11)
}
