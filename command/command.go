/*
NAME
  command.go

DESCRIPTION
  command.go defines Command, the top-level sum type over every category's
  decoded variant, and Dispatch, the entry point that routes a command body
  to its category decoder by the first wire byte.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package command dispatches a decoded command body to its category
// package and re-exposes every category's variants behind one sum type.
package command

import (
	"github.com/ekshore/eldritchwire/command/audio"
	"github.com/ekshore/eldritchwire/command/colorcorrection"
	"github.com/ekshore/eldritchwire/command/configuration"
	"github.com/ekshore/eldritchwire/command/display"
	"github.com/ekshore/eldritchwire/command/lens"
	"github.com/ekshore/eldritchwire/command/media"
	"github.com/ekshore/eldritchwire/command/output"
	"github.com/ekshore/eldritchwire/command/ptz"
	"github.com/ekshore/eldritchwire/command/reference"
	"github.com/ekshore/eldritchwire/command/tally"
	"github.com/ekshore/eldritchwire/command/video"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is satisfied by every decoded variant across every category. A
// concrete value's Category method reports which category package produced
// it; callers needing the variant itself type-switch on the concrete type.
type Command interface {
	Category() wire.Category
}

// Options configures the decoder features described in the wire format's
// feature section: whether declared bounds are enforced, and whether the
// Video NDFilterStop parameter decodes as the structured NDFilterStop
// variant or the action-only NDFilterAction variant.
type Options struct {
	BoundsChecked  bool
	IgnoreNDFilter bool
}

// DefaultOptions matches the decoder's default feature configuration:
// bounds checking on, NDFilterStop decoded in its structured form.
var DefaultOptions = Options{BoundsChecked: true, IgnoreNDFilter: false}

// Dispatch decodes a command body into its typed variant. The category
// byte selects which category package handles the remainder; an unknown
// category is reported as InvalidCommandDataError.
func Dispatch(data wire.CommandData, opts Options) (Command, error) {
	switch wire.Category(data.Category()) {
	case wire.CategoryLens:
		return lens.Decode(data, opts.BoundsChecked)
	case wire.CategoryVideo:
		return video.Decode(data, opts.BoundsChecked, opts.IgnoreNDFilter)
	case wire.CategoryAudio:
		return audio.Decode(data, opts.BoundsChecked)
	case wire.CategoryOutput:
		return output.Decode(data, opts.BoundsChecked)
	case wire.CategoryDisplay:
		return display.Decode(data, opts.BoundsChecked)
	case wire.CategoryTally:
		return tally.Decode(data, opts.BoundsChecked)
	case wire.CategoryReference:
		return reference.Decode(data, opts.BoundsChecked)
	case wire.CategoryConfiguration:
		return configuration.Decode(data)
	case wire.CategoryColorCorrection:
		return colorcorrection.Decode(data, opts.BoundsChecked)
	case wire.CategoryMedia:
		return media.Decode(data)
	case wire.CategoryPTZControl:
		return ptz.Decode(data)
	default:
		return nil, &wire.InvalidCommandDataError{
			Message:     "unknown category",
			RecordBytes: data.Bytes(),
		}
	}
}
