/*
NAME
  reference.go

DESCRIPTION
  reference.go declares the Reference category (0x06) command variants:
  genlock source selection and timing offset.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package reference implements decoding of the Reference (0x06) command
// category.
package reference

import "github.com/ekshore/eldritchwire/wire"

// Command is implemented by every Reference category variant.
type Command interface {
	Category() wire.Category
}

// Source selects between the internal and external genlock reference.
type Source struct {
	Operation wire.Operation
	Data      int8
}

func (Source) Category() wire.Category { return wire.CategoryReference }

// Offset adjusts the genlock timing offset. The camera imposes no declared
// range on this parameter.
type Offset struct {
	Operation wire.Operation
	Data      int32
}

func (Offset) Category() wire.Category { return wire.CategoryReference }
