/*
NAME
  audio.go

DESCRIPTION
  audio.go declares the Audio category (0x02) command variants: input
  levels, headphone and speaker mix, input type and phantom power.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package audio implements decoding of the Audio (0x02) command category.
package audio

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Audio category variant.
type Command interface {
	Category() wire.Category
}

// MicLevel sets the microphone input level, normalized to [0.0, 1.0].
type MicLevel struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (MicLevel) Category() wire.Category { return wire.CategoryAudio }

// HeadphoneLevel sets the headphone output level, normalized to [0.0, 1.0].
type HeadphoneLevel struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (HeadphoneLevel) Category() wire.Category { return wire.CategoryAudio }

// HeadphoneProgramMix sets the balance between program audio and input
// monitoring in the headphone mix.
type HeadphoneProgramMix struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (HeadphoneProgramMix) Category() wire.Category { return wire.CategoryAudio }

// SpeakerLevel sets the built-in speaker output level, normalized to
// [0.0, 1.0].
type SpeakerLevel struct {
	Operation wire.Operation
	Data      fpd.FixedPointDecimal
}

func (SpeakerLevel) Category() wire.Category { return wire.CategoryAudio }

// InputType selects the audio input source.
type InputType struct {
	Operation wire.Operation
	Data      int8
}

func (InputType) Category() wire.Category { return wire.CategoryAudio }

// InputLevelsData is the 2-tuple payload of InputLevels.
type InputLevelsData struct {
	ChannelOne fpd.FixedPointDecimal
	ChannelTwo fpd.FixedPointDecimal
}

// InputLevels sets the two input channel gains.
type InputLevels struct {
	Operation wire.Operation
	Data      InputLevelsData
}

func (InputLevels) Category() wire.Category { return wire.CategoryAudio }

// PhantomPower enables or disables 48V phantom power on the audio inputs.
type PhantomPower struct {
	Operation wire.Operation
	Data      bool
}

func (PhantomPower) Category() wire.Category { return wire.CategoryAudio }
