package codec

import (
	"math"
	"testing"
)

func TestPack754_KnownBits(t *testing.T) {
	testCases := []struct {
		name    string
		value   float64
		bits    uint
		expbits uint
		want    uint64
	}{
		{name: "zero 32-bit", value: 0.0, bits: 32, expbits: 8, want: 0},
		{name: "zero 64-bit", value: 0.0, bits: 64, expbits: 11, want: 0},
		{name: "1.25 as float32", value: 1.25, bits: 32, expbits: 8, want: 0x3fa00000},
		{name: "1.0 as float32", value: 1.0, bits: 32, expbits: 8, want: 0x3f800000},
		{name: "-2.0 as float32", value: -2.0, bits: 32, expbits: 8, want: 0xc0000000},
		{name: "2.375 as float64", value: 2.375, bits: 64, expbits: 11, want: 0x4003000000000000},
		{name: "1.0 as float64", value: 1.0, bits: 64, expbits: 11, want: 0x3ff0000000000000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pack754(tc.value, tc.bits, tc.expbits)
			if got != tc.want {
				t.Errorf("Pack754(%v, %d, %d) = %#x, want %#x", tc.value, tc.bits, tc.expbits, got, tc.want)
			}
		})
	}
}

func TestFloat32_RoundTrip(t *testing.T) {
	testCases := []float32{0, 1.25, -1.25, 0.5, -0.5, 2.375, 1024.0, 3.1415927, 1e10, -1e-10}
	buf := make([]byte, 4)
	for _, want := range testCases {
		PackFloat32(buf, want)
		if got := UnpackFloat32(buf); got != want {
			t.Errorf("float32 round trip mismatch: got %v, want %v", got, want)
		}
	}
}

func TestFloat64_RoundTrip(t *testing.T) {
	testCases := []float64{0, 1.25, -1.25, 2.375, math.Pi, -math.E, 1e100, -1e-100, 123456789.123456}
	buf := make([]byte, 8)
	for _, want := range testCases {
		PackFloat64(buf, want)
		if got := UnpackFloat64(buf); got != want {
			t.Errorf("float64 round trip mismatch: got %v, want %v", got, want)
		}
	}
}

func TestPack754_NonFinite(t *testing.T) {
	testCases := []struct {
		name    string
		value   float64
		bits    uint
		expbits uint
		want    uint64
	}{
		{name: "+inf 32-bit", value: math.Inf(1), bits: 32, expbits: 8, want: 0x7f800000},
		{name: "-inf 32-bit", value: math.Inf(-1), bits: 32, expbits: 8, want: 0xff800000},
		{name: "+inf 64-bit", value: math.Inf(1), bits: 64, expbits: 11, want: 0x7ff0000000000000},
		{name: "-inf 64-bit", value: math.Inf(-1), bits: 64, expbits: 11, want: 0xfff0000000000000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pack754(tc.value, tc.bits, tc.expbits)
			if got != tc.want {
				t.Errorf("Pack754(%v, %d, %d) = %#x, want %#x", tc.value, tc.bits, tc.expbits, got, tc.want)
			}
		})
	}

	if got := Pack754(math.NaN(), 32, 8); got>>23&0xff != 0xff || got&0x7fffff == 0 {
		t.Errorf("Pack754(NaN, 32, 8) = %#x, want all-ones exponent with nonzero significand", got)
	}
}

func TestFloat_NonFiniteRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	PackFloat32(buf, float32(math.Inf(1)))
	if got := UnpackFloat32(buf); !math.IsInf(float64(got), 1) {
		t.Errorf("float32 +inf round trip = %v", got)
	}
	PackFloat32(buf, float32(math.Inf(-1)))
	if got := UnpackFloat32(buf); !math.IsInf(float64(got), -1) {
		t.Errorf("float32 -inf round trip = %v", got)
	}
	PackFloat64(buf, math.Inf(1))
	if got := UnpackFloat64(buf); !math.IsInf(got, 1) {
		t.Errorf("float64 +inf round trip = %v", got)
	}
	PackFloat64(buf, math.Inf(-1))
	if got := UnpackFloat64(buf); !math.IsInf(got, -1) {
		t.Errorf("float64 -inf round trip = %v", got)
	}
	PackFloat64(buf, math.NaN())
	if got := UnpackFloat64(buf); !math.IsNaN(got) {
		t.Errorf("float64 NaN round trip = %v", got)
	}
}

func TestUnpack754_ZeroBits(t *testing.T) {
	if got := Unpack754(0, 32, 8); got != 0.0 {
		t.Errorf("Unpack754(0, 32, 8) = %v, want 0", got)
	}
	if got := Unpack754(0, 64, 11); got != 0.0 {
		t.Errorf("Unpack754(0, 64, 11) = %v, want 0", got)
	}
}

func TestPackFloat32_WireBytes(t *testing.T) {
	// 1.25 must serialize to its IEEE-754 bits in big-endian order
	buf := make([]byte, 4)
	PackFloat32(buf, 1.25)
	want := []byte{0x3f, 0xa0, 0x00, 0x00}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("wire bytes mismatch: got % x, want % x", buf, want)
		}
	}
}
