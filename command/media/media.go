/*
NAME
  media.go

DESCRIPTION
  media.go declares the Media category (0x0a) command variants: codec
  selection and transport/record mode.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package media implements decoding of the Media (0x0a) command category.
package media

import "github.com/ekshore/eldritchwire/wire"

// Command is implemented by every Media category variant.
type Command interface {
	Category() wire.Category
}

// CodecData is the 2-tuple payload of Codec.
type CodecData struct {
	BasicCodec   int8
	CodecVariant int8
}

// Codec selects the recording codec and its variant.
type Codec struct {
	Operation wire.Operation
	Data      CodecData
}

func (Codec) Category() wire.Category { return wire.CategoryMedia }

// TransportModeData is the 5-tuple payload of TransportMode.
type TransportModeData struct {
	Mode                 int8
	Speed                int8
	Flags                int8
	SlotOneStorageMedium int8
	SlotTwoStorageMedium int8
}

// TransportMode sets the deck transport state and active storage slots.
type TransportMode struct {
	Operation wire.Operation
	Data      TransportModeData
}

func (TransportMode) Category() wire.Category { return wire.CategoryMedia }
