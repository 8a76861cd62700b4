/*
NAME
  output.go

DESCRIPTION
  output.go declares the Output category (0x03) command variants: on-screen
  overlay enablement and frame guide styling.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package output implements decoding of the Output (0x03) command category.
package output

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Output category variant.
type Command interface {
	Category() wire.Category
}

// OverlayEnabled toggles the on-screen overlay as a whole.
type OverlayEnabled struct {
	Operation wire.Operation
	Data      int16
}

func (OverlayEnabled) Category() wire.Category { return wire.CategoryOutput }

// FrameGuideStyles selects the active frame guide style.
type FrameGuideStyles struct {
	Operation wire.Operation
	Data      int8
}

func (FrameGuideStyles) Category() wire.Category { return wire.CategoryOutput }

// FrameGuidesOpacity sets frame guide overlay opacity, normalized to
// [0.1, 1.0].
type FrameGuidesOpacity struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (FrameGuidesOpacity) Category() wire.Category { return wire.CategoryOutput }

// OverlaysData is the 4-tuple payload of Overlays.
type OverlaysData struct {
	FrameGuideStyle    int8
	FrameGuideOpacity  int8
	SafeAreaPercentage int8
	GridStyle          int8
}

// Overlays sets the combined overlay configuration in one command.
type Overlays struct {
	Operation wire.Operation
	Data      OverlaysData
}

func (Overlays) Category() wire.Category { return wire.CategoryOutput }
