/*
NAME
  fpd_test.go

DESCRIPTION
  fpd_test.go tests the Q5.11 FixedPointDecimal conversions.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fpd

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestFifteenPercent(t *testing.T) {
	f := New(0x0133)
	if got := f.Rounded(); got != 0.15 {
		t.Errorf("Rounded() = %v, want 0.15", got)
	}
}

func TestMinusPointThree(t *testing.T) {
	f := New(-614) // raw 0xfd9a as two's complement
	if got := f.Rounded(); got != -0.3 {
		t.Errorf("Rounded() = %v, want -0.3", got)
	}
}

// TestFromBytesRoundTrip checks property 3 from the spec: for every 2-byte
// buffer, FromBytes(b).Raw() == int16(little-endian(b)).
func TestFromBytesRoundTrip(t *testing.T) {
	cases := [][2]byte{
		{0x00, 0x00},
		{0xff, 0xff},
		{0x33, 0x01},
		{0x9a, 0xfd},
		{0xff, 0x7f},
		{0x00, 0x80},
	}
	for _, b := range cases {
		want := int16(binary.LittleEndian.Uint16(b[:]))
		got := FromBytes(b[:]).Raw()
		if got != want {
			t.Errorf("FromBytes(%v).Raw() = %v, want %v", b, got, want)
		}
	}
}

func TestUpperBoundary(t *testing.T) {
	f := FromBytes([]byte{0xff, 0x7f})
	if f.Raw() != math.MaxInt16 {
		t.Fatalf("Raw() = %v, want %v", f.Raw(), int16(math.MaxInt16))
	}
	if !f.Less(16.0) {
		t.Errorf("expected max FPD value to be less than 16.0, got real=%v", f.Real())
	}
}

func TestEqual(t *testing.T) {
	f := New(0x0400) // 1024 / 2048 == 0.5
	if !f.Equal(0.5) {
		t.Errorf("Equal(0.5) = false, want true (real=%v)", f.Real())
	}
}
