// Package wire serializes dynamic messages to and from their binary wire
// representation.
//
// # Record Format
//
// A serialized dynamic message is a single contiguous record. All integers
// are packed big-endian; lengths are in bytes:
//
//	[magic(4)][total_length(4)][name_length(4)][name(m)][field_count(4)]
//	repeated field_count times:
//	  [field_total_length(4)][field_name_length(4)][field_name(k)]
//	  [field_type(4)][value_length(4)][value(l)]
//
// The magic constant is a fixed 32-bit sentinel identifying the format.
// Scalar values occupy their fixed wire width; string values occupy
// exactly value_length bytes with no NUL terminator. field_total_length is
// written on serialize but only informational on parse: the parser
// advances strictly by the explicit name and value lengths.
//
// # Verification
//
// A buffer is a valid start when its first four bytes decode to the magic
// constant, and complete when the declared total_length does not exceed
// the actual buffer length. Trailing bytes beyond the declared length are
// tolerated and never read. Sub-lengths inside the record are trusted as
// given, so callers feeding untrusted input should gate on VerifyFull
// first.
//
// # Error Handling
//
// Malformed content degrades rather than raising: Deserialize returns nil
// for a buffer that fails verification, fields with out-of-range type
// codes are dropped, and a zero field_count is logged as an anomaly while
// the (empty) message is still returned.
package wire
