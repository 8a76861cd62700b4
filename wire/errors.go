/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the closed set of error kinds the decoder can return, as
  described in the wire format's error handling design. Each kind is
  distinguishable, the sentinel values by equality or errors.Is and the
  typed structs with errors.As, so callers can react to, e.g., bounds
  violations differently from malformed headers.

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
	"fmt"

	"github.com/pkg/errors"
)

// ErrPacketTooLarge is returned when a frame buffer exceeds the 255-byte
// single-frame wire limit.
var ErrPacketTooLarge = errors.New("eldritchwire: frame exceeds 255 bytes")

// ErrInvalidHeader is returned when a record header cannot be read, either
// because fewer than four bytes remain or the reserved byte is nonzero.
var ErrInvalidHeader = errors.New("eldritchwire: invalid command header")

// ErrEndOfPacket is returned in strict mode when a record's body or padding
// would read past the end of the frame.
var ErrEndOfPacket = errors.New("eldritchwire: end of packet")

// InvalidCommandDataError reports that a command body was too short, named
// an unknown category or parameter, declared a mismatched data type, or
// otherwise failed to decode. RecordBytes carries the offending body for
// diagnostics.
type InvalidCommandDataError struct {
	Message     string
	RecordBytes []byte
}

func (e *InvalidCommandDataError) Error() string {
	return fmt.Sprintf("eldritchwire: invalid command data: %s (record: % x)", e.Message, e.RecordBytes)
}

// DataOutOfBoundsError reports that a decoded value fell outside the
// parameter's declared inclusive range.
type DataOutOfBoundsError struct {
	Parameter    string
	Value        fmt.Stringer
	Lower, Upper fmt.Stringer
}

func (e *DataOutOfBoundsError) Error() string {
	return fmt.Sprintf("eldritchwire: %s value %s out of bounds [%s, %s]", e.Parameter, e.Value, e.Lower, e.Upper)
}

// PaddingViolationError reports that a record's padding failed to verify,
// either because its length did not bring the record to a 4-byte boundary
// or because one of its bytes was nonzero.
type PaddingViolationError struct {
	Message string
}

func (e *PaddingViolationError) Error() string { return e.Message }

// stringer wraps a fmt.Stringer-compatible value for embedding into
// DataOutOfBoundsError without every call site needing its own type.
type stringer string

func (s stringer) String() string { return string(s) }

// Str builds a fmt.Stringer from anything printable with %v, for use in
// DataOutOfBoundsError.
func Str(v interface{}) fmt.Stringer { return stringer(fmt.Sprintf("%v", v)) }
