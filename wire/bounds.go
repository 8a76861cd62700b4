/*
NAME
  bounds.go

DESCRIPTION
  bounds.go provides the generic inclusive-range checks used by generated
  category decoders when the bounds-checked feature is enabled. Defaults for
  one-sided declarations come from each primitive's natural domain extrema.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wire

import (
	"math"

	"github.com/ekshore/eldritchwire/fpd"
)

// CheckBoundsInt8 verifies v lies within [lower, upper] inclusive.
func CheckBoundsInt8(param string, v, lower, upper int8) error {
	if v < lower || v > upper {
		return &DataOutOfBoundsError{Parameter: param, Value: Str(v), Lower: Str(lower), Upper: Str(upper)}
	}
	return nil
}

// CheckBoundsInt16 verifies v lies within [lower, upper] inclusive.
func CheckBoundsInt16(param string, v, lower, upper int16) error {
	if v < lower || v > upper {
		return &DataOutOfBoundsError{Parameter: param, Value: Str(v), Lower: Str(lower), Upper: Str(upper)}
	}
	return nil
}

// CheckBoundsInt32 verifies v lies within [lower, upper] inclusive.
func CheckBoundsInt32(param string, v, lower, upper int32) error {
	if v < lower || v > upper {
		return &DataOutOfBoundsError{Parameter: param, Value: Str(v), Lower: Str(lower), Upper: Str(upper)}
	}
	return nil
}

// CheckBoundsFPD verifies f's real value lies within [lower, upper]
// inclusive.
func CheckBoundsFPD(param string, f fpd.FixedPointDecimal, lower, upper float32) error {
	if !f.InRange(lower, upper) {
		return &DataOutOfBoundsError{Parameter: param, Value: Str(f.Real()), Lower: Str(lower), Upper: Str(upper)}
	}
	return nil
}

// Natural domain extrema, used when a variant's metadata declares only one
// side of its bounds.
const (
	Int8Min  = math.MinInt8
	Int8Max  = math.MaxInt8
	Int16Min = math.MinInt16
	Int16Max = math.MaxInt16
	Int32Min = math.MinInt32
	Int32Max = math.MaxInt32
)

// FPDMin and FPDMax are the default FPD bounds, re-exported from fpd for
// convenience at generated call sites.
const (
	FPDMin = fpd.Min
	FPDMax = fpd.Max
)
