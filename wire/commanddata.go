/*
NAME
  commanddata.go

DESCRIPTION
  commanddata.go defines CommandData, a zero-copy view over one command
  record's body, exposing its header fields and payload without copying out
  of the underlying frame buffer.

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

// commandDataMinLen is the minimum body length CommandData will accept:
// category, parameter, data_type and operation.
const commandDataMinLen = 4

// CommandData is an immutable, borrowed view over one command body. It does
// not copy its input; callers must materialize any owned values (a decoded
// Command) before the backing buffer is released.
type CommandData struct {
	bytes []byte
}

// NewCommandData wraps b as a CommandData. b must be at least
// commandDataMinLen bytes; shorter input is rejected.
func NewCommandData(b []byte) (CommandData, error) {
	if len(b) < commandDataMinLen {
		return CommandData{}, &InvalidCommandDataError{
			Message:     "command body shorter than the 4-byte category/parameter/data_type/operation prefix",
			RecordBytes: b,
		}
	}
	return CommandData{bytes: b}, nil
}

// Category returns the command body's category byte.
func (c CommandData) Category() uint8 { return c.bytes[0] }

// Parameter returns the command body's parameter byte.
func (c CommandData) Parameter() uint8 { return c.bytes[1] }

// DataType returns the command body's data_type byte.
func (c CommandData) DataType() uint8 { return c.bytes[2] }

// Operation returns the command body's raw operation byte.
func (c CommandData) Operation() uint8 { return c.bytes[3] }

// Payload returns the bytes following the 4-byte prefix.
func (c CommandData) Payload() []byte { return c.bytes[commandDataMinLen:] }

// Bytes returns the full record body, for use in diagnostic errors.
func (c CommandData) Bytes() []byte { return c.bytes }
