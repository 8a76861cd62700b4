/*
NAME
  ptz.go

DESCRIPTION
  ptz.go declares the PtzControl category (0x0b) command variants: pan/tilt
  velocity and memory preset recall.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ptz implements decoding of the PtzControl (0x0b) command
// category.
package ptz

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every PtzControl category variant.
type Command interface {
	Category() wire.Category
}

// PanTiltVelocityData is the 2-tuple payload of PanTiltVelocity.
type PanTiltVelocityData struct {
	PanVelocity  fpd.FixedPointDecimal
	TiltVelocity fpd.FixedPointDecimal
}

// PanTiltVelocity drives the pan/tilt head at a continuous velocity.
type PanTiltVelocity struct {
	Operation wire.Operation
	Data      PanTiltVelocityData
}

func (PanTiltVelocity) Category() wire.Category { return wire.CategoryPTZControl }

// MemoryPresetData is the 2-tuple payload of MemoryPreset.
type MemoryPresetData struct {
	PresetCommand int8
	PresetSlot    int8
}

// MemoryPreset recalls or stores a pan/tilt/zoom memory preset.
type MemoryPreset struct {
	Operation wire.Operation
	Data      MemoryPresetData
}

func (MemoryPreset) Category() wire.Category { return wire.CategoryPTZControl }
