package codec

import "math"

// PackInt16 stores a 16-bit integer into buf in big-endian order.
// Signed values are passed as their two's-complement bit pattern.
func PackInt16(buf []byte, i uint16) {
	buf[0] = byte(i >> 8)
	buf[1] = byte(i)
}

// PackInt32 stores a 32-bit integer into buf in big-endian order.
func PackInt32(buf []byte, i uint32) {
	buf[0] = byte(i >> 24)
	buf[1] = byte(i >> 16)
	buf[2] = byte(i >> 8)
	buf[3] = byte(i)
}

// PackInt64 stores a 64-bit integer into buf in big-endian order.
func PackInt64(buf []byte, i uint64) {
	buf[0] = byte(i >> 56)
	buf[1] = byte(i >> 48)
	buf[2] = byte(i >> 40)
	buf[3] = byte(i >> 32)
	buf[4] = byte(i >> 24)
	buf[5] = byte(i >> 16)
	buf[6] = byte(i >> 8)
	buf[7] = byte(i)
}

// UnpackUint16 reads a big-endian 16-bit unsigned integer from buf.
func UnpackUint16(buf []byte) uint16 {
	return uint16(buf[0])<<8 | uint16(buf[1])
}

// UnpackInt16 reads a big-endian 16-bit signed integer from buf.
// The sign is recovered by comparing against the unsigned midpoint
// instead of bit-casting.
func UnpackInt16(buf []byte) int16 {
	u := UnpackUint16(buf)
	if u <= math.MaxInt16 {
		return int16(u)
	}
	return int16(-1 - int32(math.MaxUint16-u))
}

// UnpackUint32 reads a big-endian 32-bit unsigned integer from buf.
func UnpackUint32(buf []byte) uint32 {
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
}

// UnpackInt32 reads a big-endian 32-bit signed integer from buf.
func UnpackInt32(buf []byte) int32 {
	u := UnpackUint32(buf)
	if u <= math.MaxInt32 {
		return int32(u)
	}
	return int32(-1 - int64(math.MaxUint32-u))
}

// UnpackUint64 reads a big-endian 64-bit unsigned integer from buf.
func UnpackUint64(buf []byte) uint64 {
	return uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
}

// UnpackInt64 reads a big-endian 64-bit signed integer from buf.
func UnpackInt64(buf []byte) int64 {
	u := UnpackUint64(buf)
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return -1 - int64(math.MaxUint64-u)
}

// Slice copies n bytes of src starting at start into dst and returns dst.
// The range is trusted as given; callers compute bounds themselves.
func Slice(dst, src []byte, start, n int) []byte {
	copy(dst, src[start:start+n])
	return dst
}
