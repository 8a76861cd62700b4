/*
NAME
  fpd.go

DESCRIPTION
  fpd.go provides FixedPointDecimal, the Q5.11 signed fixed-point scalar used
  pervasively by the camera control wire protocol for normalized and
  physical-unit values (focus position, aperture stop, audio levels, color
  correction channels, and so on).

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package fpd implements the Q5.11 fixed-point decimal representation used
// by the camera control protocol.
package fpd

import (
	"encoding/binary"
	"fmt"
	"math"
)

// scale is 2^11, the number of fractional bits in the Q5.11 representation.
const scale = 1 << 11

// Min and Max are the domain extrema representable by a FixedPointDecimal,
// used as the default bounds for variants that declare only one side of a
// range.
const (
	Min = float32(math.MinInt16) / scale
	Max = float32(math.MaxInt16) / scale
)

// FixedPointDecimal is a signed 16-bit Q5.11 fixed-point scalar. The raw
// value is stored exactly; the real value is derived on demand and is never
// itself stored, so round-tripping through the wire representation never
// loses precision.
type FixedPointDecimal struct {
	raw int16
}

// FromBytes constructs a FixedPointDecimal from a 2-byte little-endian wire
// buffer. b must be exactly 2 bytes; callers are expected to have already
// sliced the payload to size.
func FromBytes(b []byte) FixedPointDecimal {
	return FixedPointDecimal{raw: int16(binary.LittleEndian.Uint16(b))}
}

// New wraps a raw Q5.11 value directly. Exposed mainly for tests and for
// construction of bound literals.
func New(raw int16) FixedPointDecimal { return FixedPointDecimal{raw: raw} }

// Raw returns the underlying two's complement storage.
func (f FixedPointDecimal) Raw() int16 { return f.raw }

// Real returns the fixed-point value as a 32-bit float.
func (f FixedPointDecimal) Real() float32 { return float32(f.raw) / scale }

// Rounded returns Real rounded to two decimal places, for display and test
// purposes only.
func (f FixedPointDecimal) Rounded() float32 {
	return float32(math.Round(float64(f.Real())*100) / 100)
}

// Equal reports whether f's real value bitwise equals v.
func (f FixedPointDecimal) Equal(v float32) bool { return f.Real() == v }

// Less reports whether f's real value is less than v.
func (f FixedPointDecimal) Less(v float32) bool { return f.Real() < v }

// Greater reports whether f's real value is greater than v.
func (f FixedPointDecimal) Greater(v float32) bool { return f.Real() > v }

// InRange reports whether f's real value lies within [lower, upper]
// inclusive.
func (f FixedPointDecimal) InRange(lower, upper float32) bool {
	v := f.Real()
	return v >= lower && v <= upper
}

func (f FixedPointDecimal) String() string {
	return fmt.Sprintf("FixedPointDecimal{raw: %d, real: %v}", f.raw, f.Real())
}
