/*
NAME
  colorcorrection.go

DESCRIPTION
  colorcorrection.go declares the ColorCorrection category (0x08) command
  variants: the lift/gamma/gain/offset color wheels, contrast, luma mix, hue
  and saturation, and the reset-to-default action.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package colorcorrection implements decoding of the ColorCorrection
// (0x08) command category.
package colorcorrection

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every ColorCorrection category variant.
type Command interface {
	Category() wire.Category
}

// WheelData is the 4-tuple payload shared by LiftAdjust, GammaAdjust,
// GainAdjust and OffsetAdjust.
type WheelData struct {
	Red   fpd.FixedPointDecimal
	Green fpd.FixedPointDecimal
	Blue  fpd.FixedPointDecimal
	Luma  fpd.FixedPointDecimal
}

// LiftAdjust adjusts the shadows color wheel.
type LiftAdjust struct {
	Operation wire.Operation
	Data      WheelData
}

func (LiftAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// GammaAdjust adjusts the midtones color wheel.
type GammaAdjust struct {
	Operation wire.Operation
	Data      WheelData
}

func (GammaAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// GainAdjust adjusts the highlights color wheel.
type GainAdjust struct {
	Operation wire.Operation
	Data      WheelData
}

func (GainAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// OffsetAdjust adjusts the global offset color wheel.
type OffsetAdjust struct {
	Operation wire.Operation
	Data      WheelData
}

func (OffsetAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// ContrastAdjustData is the 2-tuple payload of ContrastAdjust.
type ContrastAdjustData struct {
	Pivot fpd.FixedPointDecimal
	Adj   fpd.FixedPointDecimal
}

// ContrastAdjust sets the contrast pivot point and adjustment amount.
type ContrastAdjust struct {
	Operation wire.Operation
	Data      ContrastAdjustData
}

func (ContrastAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// LumaMix sets the luma contribution of the color correction, normalized
// to [0.0, 1.0].
type LumaMix struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (LumaMix) Category() wire.Category { return wire.CategoryColorCorrection }

// ColorAdjustData is the 2-tuple payload of ColorAdjust.
type ColorAdjustData struct {
	Hue fpd.FixedPointDecimal
	Sat fpd.FixedPointDecimal
}

// ColorAdjust sets global hue rotation and saturation.
type ColorAdjust struct {
	Operation wire.Operation
	Data      ColorAdjustData
}

func (ColorAdjust) Category() wire.Category { return wire.CategoryColorCorrection }

// CorrectionResetDefault resets all color correction wheels to their
// default values.
type CorrectionResetDefault struct{}

func (CorrectionResetDefault) Category() wire.Category { return wire.CategoryColorCorrection }
