/*
NAME
  operation.go

DESCRIPTION
  operation.go defines Operation, the update semantics carried by every
  non-action command variant, and the rules for decoding it from the wire
  operation byte.

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

// Operation describes how a decoded value should be applied: replacing the
// current setting, incrementing it, or (for booleans) toggling it.
type Operation int

const (
	Assign Operation = iota
	Increment
	Toggle
)

func (o Operation) String() string {
	switch o {
	case Assign:
		return "Assign"
	case Increment:
		return "Increment"
	case Toggle:
		return "Toggle"
	default:
		return "Unknown"
	}
}

// DecodeNumericOperation maps the wire operation byte for a numeric (not
// boolean) variant: 0 means Assign, any other value means Increment.
func DecodeNumericOperation(b uint8) Operation {
	if b == 0 {
		return Assign
	}
	return Increment
}

// DecodeBoolOperation maps the wire operation byte for a boolean variant.
// By default a nonzero byte is rejected, since Toggle is reserved and is
// only produced when a variant explicitly opts into it (see
// DecodeBoolOperationAllowToggle). The rejection is reported as
// InvalidCommandDataError, mirroring the protocol's treatment of any other
// disagreement between the wire bytes and a variant's declared shape.
func DecodeBoolOperation(data CommandData) (Operation, error) {
	if data.Operation() != 0 {
		return Assign, &InvalidCommandDataError{
			Message:     "boolean variant does not accept a nonzero operation byte",
			RecordBytes: data.Bytes(),
		}
	}
	return Assign, nil
}

// DecodeBoolOperationAllowToggle is the Toggle-permitting variant of
// DecodeBoolOperation, for use by variants generated with the toggle
// generator option (see the metadata-driven generator in internal/gen).
func DecodeBoolOperationAllowToggle(data CommandData) Operation {
	if data.Operation() == 0 {
		return Assign
	}
	return Toggle
}
