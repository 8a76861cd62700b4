/*
NAME
  tally.go

DESCRIPTION
  tally.go declares the Tally category (0x05) command variants: combined
  and per-side tally lamp brightness.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tally implements decoding of the Tally (0x05) command category.
package tally

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Tally category variant.
type Command interface {
	Category() wire.Category
}

// TallyBrightness sets the combined tally lamp brightness, normalized to
// [0.0, 1.0].
type TallyBrightness struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (TallyBrightness) Category() wire.Category { return wire.CategoryTally }

// FrontTallyBrightness sets the front tally lamp brightness independently,
// normalized to [0.0, 1.0].
type FrontTallyBrightness struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (FrontTallyBrightness) Category() wire.Category { return wire.CategoryTally }

// RearTallyBrightness sets the rear tally lamp brightness independently,
// normalized to [0.0, 1.0].
type RearTallyBrightness struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (RearTallyBrightness) Category() wire.Category { return wire.CategoryTally }
