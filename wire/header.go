/*
NAME
  header.go

DESCRIPTION
  header.go defines CommandHeader, the fixed 4-byte prefix of every command
  record.

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

// HeaderLen is the fixed size in bytes of a CommandHeader.
const HeaderLen = 4

// CommandHeader is the 4-byte prefix of a command record: device_id,
// command_length, command_id and a reserved byte. The reserved byte is
// validated by ParseHeader but is not retained, since the spec asserts
// nothing about it beyond "must be zero".
type CommandHeader struct {
	DeviceID      uint8
	CommandLength uint8

	// CommandID is carried through from the wire but is not used for
	// dispatch by any observed record.
	CommandID uint8
}

// ParseHeader reads a CommandHeader from the first HeaderLen bytes of b. It
// returns ErrInvalidHeader if b is too short or the reserved byte is
// nonzero.
func ParseHeader(b []byte) (CommandHeader, error) {
	if len(b) < HeaderLen {
		return CommandHeader{}, ErrInvalidHeader
	}
	if b[3] != 0 {
		return CommandHeader{}, ErrInvalidHeader
	}
	return CommandHeader{
		DeviceID:      b[0],
		CommandLength: b[1],
		CommandID:     b[2],
	}, nil
}
