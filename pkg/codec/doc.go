// Package codec provides primitive-type serialization for libcerializer.
//
// The codec package packs and unpacks fixed-width integers and floating
// point numbers into byte buffers in a host-independent layout. It is the
// foundation the wire-format serializer builds every field value on.
//
// # Integer Layout
//
// Integers are packed big-endian (network byte order) at fixed widths of
// 16, 32 or 64 bits. Signed values travel as their two's-complement bit
// pattern; unpacking reconstructs the sign with an explicit bias comparison
// against the maximum unsigned value of the same width rather than relying
// on a raw bit cast.
//
// # Float Layout
//
// Floating point numbers are packed through a general IEEE-754 encoder
// parameterized by total width and exponent width:
//
//	32-bit: 1 sign bit, 8 exponent bits, 23 significand bits
//	64-bit: 1 sign bit, 11 exponent bits, 52 significand bits
//
// The encoder normalizes the significand into [1,2) by repeated doubling or
// halving, so the wire representation never depends on the host's native
// float layout. Zero is special-cased to all-zero bits.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package codec
