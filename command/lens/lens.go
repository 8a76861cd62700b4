/*
NAME
  lens.go

DESCRIPTION
  lens.go declares the Lens category (0x00) command variants: focus,
  aperture and zoom control. The per-variant wire contract (parameter byte,
  data type, bounds) is declared in internal/gen/metadata.go, from which
  cmd/gencommand emits the matching dispatch and decode logic in
  zz_generated.go.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package lens implements decoding of the Lens (0x00) command category.
package lens

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Lens category variant.
type Command interface {
	Category() wire.Category
}

// Focus sets the lens focus position, normalized to [0.0, 1.0].
type Focus struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (Focus) Category() wire.Category { return wire.CategoryLens }

// InstantaneousAutoFocus triggers a one-shot autofocus pass. It carries no
// payload.
type InstantaneousAutoFocus struct{}

func (InstantaneousAutoFocus) Category() wire.Category { return wire.CategoryLens }

// ApertureFStop sets the aperture as an f-stop value.
type ApertureFStop struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (ApertureFStop) Category() wire.Category { return wire.CategoryLens }

// ApertureNormalized sets the aperture normalized to [0.0, 1.0].
type ApertureNormalized struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (ApertureNormalized) Category() wire.Category { return wire.CategoryLens }

// ApertureOrdinal sets the aperture by its ordinal index into the lens's
// supported stop list.
type ApertureOrdinal struct {
	Operation wire.Operation
	Data      int16
}

func (ApertureOrdinal) Category() wire.Category { return wire.CategoryLens }

// InstantaneousAutoAperture triggers a one-shot auto-iris pass.
type InstantaneousAutoAperture struct{}

func (InstantaneousAutoAperture) Category() wire.Category { return wire.CategoryLens }

// OpticalImageStabilization enables or disables lens-based stabilization.
type OpticalImageStabilization struct {
	Operation wire.Operation
	Data      bool
}

func (OpticalImageStabilization) Category() wire.Category { return wire.CategoryLens }

// AbsoluteZoomMM sets the zoom position in millimetres of focal length.
type AbsoluteZoomMM struct {
	Operation wire.Operation
	Data      int16
}

func (AbsoluteZoomMM) Category() wire.Category { return wire.CategoryLens }

// AbsoluteZoomNormalized sets the zoom position normalized to [0.0, 1.0].
type AbsoluteZoomNormalized struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (AbsoluteZoomNormalized) Category() wire.Category { return wire.CategoryLens }

// AbsoluteZoomContinuous drives the zoom motor at a continuous speed in
// [-1.0, 1.0], where the sign gives direction.
type AbsoluteZoomContinuous struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (AbsoluteZoomContinuous) Category() wire.Category { return wire.CategoryLens }
