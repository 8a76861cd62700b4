/*
NAME
  datatype.go

DESCRIPTION
  datatype.go enumerates the wire data_type byte values and the scalar
  decoders shared by every category's generated decode logic.

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
	"encoding/binary"

	"github.com/ekshore/eldritchwire/fpd"
)

// DataType identifies the payload layout of a command's data.
type DataType uint8

const (
	DataBool   DataType = 0x00
	DataInt8   DataType = 0x01
	DataInt16  DataType = 0x02
	DataInt32  DataType = 0x03
	DataInt64  DataType = 0x04
	DataString DataType = 0x05
	DataFPD    DataType = 0x80
)

func (d DataType) String() string {
	switch d {
	case DataBool:
		return "bool"
	case DataInt8:
		return "int8"
	case DataInt16:
		return "int16"
	case DataInt32:
		return "int32"
	case DataInt64:
		return "int64"
	case DataString:
		return "string"
	case DataFPD:
		return "fpd"
	default:
		return "unknown"
	}
}

// CheckDataType verifies that data's wire data_type byte matches want,
// returning InvalidCommandDataError on mismatch. This is step 2 of the
// per-variant decode protocol.
func CheckDataType(data CommandData, want DataType) error {
	if DataType(data.DataType()) != want {
		return &InvalidCommandDataError{
			Message:     "data_type byte does not match the variant's declared type",
			RecordBytes: data.Bytes(),
		}
	}
	return nil
}

// DecodeBool decodes a single boolean byte: zero is false, nonzero is true.
func DecodeBool(payload []byte, record []byte) (bool, error) {
	if len(payload) < 1 {
		return false, &InvalidCommandDataError{Message: "payload too short for bool", RecordBytes: record}
	}
	return payload[0] != 0, nil
}

// DecodeInt8 decodes a single signed byte.
func DecodeInt8(payload []byte, record []byte) (int8, error) {
	if len(payload) < 1 {
		return 0, &InvalidCommandDataError{Message: "payload too short for int8", RecordBytes: record}
	}
	return int8(payload[0]), nil
}

// DecodeInt16 decodes a little-endian signed 16-bit integer.
func DecodeInt16(payload []byte, record []byte) (int16, error) {
	if len(payload) < 2 {
		return 0, &InvalidCommandDataError{Message: "payload too short for int16", RecordBytes: record}
	}
	return int16(binary.LittleEndian.Uint16(payload)), nil
}

// DecodeInt32 decodes a little-endian signed 32-bit integer.
func DecodeInt32(payload []byte, record []byte) (int32, error) {
	if len(payload) < 4 {
		return 0, &InvalidCommandDataError{Message: "payload too short for int32", RecordBytes: record}
	}
	return int32(binary.LittleEndian.Uint32(payload)), nil
}

// DecodeInt64 decodes a little-endian signed 64-bit integer.
func DecodeInt64(payload []byte, record []byte) (int64, error) {
	if len(payload) < 8 {
		return 0, &InvalidCommandDataError{Message: "payload too short for int64", RecordBytes: record}
	}
	return int64(binary.LittleEndian.Uint64(payload)), nil
}

// DecodeString decodes the remainder of the payload as UTF-8 text.
func DecodeString(payload []byte, record []byte) (string, error) {
	return string(payload), nil
}

// DecodeFPD decodes a single Q5.11 fixed-point scalar.
func DecodeFPD(payload []byte, record []byte) (fpd.FixedPointDecimal, error) {
	if len(payload) < 2 {
		return fpd.FixedPointDecimal{}, &InvalidCommandDataError{Message: "payload too short for fpd", RecordBytes: record}
	}
	return fpd.FromBytes(payload[:2]), nil
}
