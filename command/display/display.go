/*
NAME
  display.go

DESCRIPTION
  display.go declares the Display category (0x04) command variants: built-in
  monitor brightness, zebra and peaking aids, color bars, and focus assist.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package display implements decoding of the Display (0x04) command
// category.
package display

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Display category variant.
type Command interface {
	Category() wire.Category
}

// Brightness sets the built-in monitor's backlight brightness, normalized
// to [0.0, 1.0].
type Brightness struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (Brightness) Category() wire.Category { return wire.CategoryDisplay }

// OverlaysEnabled toggles the monitor's status overlay as a whole.
type OverlaysEnabled struct {
	Operation wire.Operation
	Data      int16
}

func (OverlaysEnabled) Category() wire.Category { return wire.CategoryDisplay }

// ZebraLevel sets the exposure zebra stripe threshold, normalized to
// [0.0, 1.0].
type ZebraLevel struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (ZebraLevel) Category() wire.Category { return wire.CategoryDisplay }

// PeakingLevel sets the focus peaking intensity, normalized to [0.0, 1.0].
type PeakingLevel struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (PeakingLevel) Category() wire.Category { return wire.CategoryDisplay }

// ColorBarsDisplayTime sets how long test color bars are shown, in seconds.
type ColorBarsDisplayTime struct {
	Operation wire.Operation
	Data      int8
}

func (ColorBarsDisplayTime) Category() wire.Category { return wire.CategoryDisplay }

// FocusAssistData is the 2-tuple payload of FocusAssist.
type FocusAssistData struct {
	Method int8
	Color  int8
}

// FocusAssist selects the focus assist rendering method and overlay color.
type FocusAssist struct {
	Operation wire.Operation
	Data      FocusAssistData
}

func (FocusAssist) Category() wire.Category { return wire.CategoryDisplay }
