/*
NAME
  video.go

DESCRIPTION
  video.go declares the Video category (0x01) command variants: sensor
  mode, exposure, white balance, gain, recording format and related image
  pipeline controls.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package video implements decoding of the Video (0x01) command category.
package video

import (
	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
)

// Command is implemented by every Video category variant.
type Command interface {
	Category() wire.Category
}

// VideoModeData is the 5-tuple payload of the VideoMode variant.
type VideoModeData struct {
	FrameRate  int8
	MRate      int8
	Dimensions int8
	Interlaced int8
	ColorSpace int8
}

// VideoMode sets the sensor's capture mode.
type VideoMode struct {
	Operation wire.Operation
	Data      VideoModeData
}

func (VideoMode) Category() wire.Category { return wire.CategoryVideo }

// GainLegacy sets sensor gain using the legacy 1-16x scale.
type GainLegacy struct {
	Operation wire.Operation
	Data      int8
}

func (GainLegacy) Category() wire.Category { return wire.CategoryVideo }

// ManualWhiteBalanceData is the 2-tuple payload of ManualWhiteBalance.
type ManualWhiteBalanceData struct {
	ColorTemp int16
	Tint      int16
}

// ManualWhiteBalance sets a fixed color temperature and tint.
type ManualWhiteBalance struct {
	Operation wire.Operation
	Data      ManualWhiteBalanceData
}

func (ManualWhiteBalance) Category() wire.Category { return wire.CategoryVideo }

// SetAutoWB requests a one-shot automatic white balance measurement.
type SetAutoWB struct{}

func (SetAutoWB) Category() wire.Category { return wire.CategoryVideo }

// RestoreAutoWB returns white balance to continuous automatic mode.
type RestoreAutoWB struct{}

func (RestoreAutoWB) Category() wire.Category { return wire.CategoryVideo }

// ExposureUS sets shutter exposure time in microseconds.
type ExposureUS struct {
	Operation wire.Operation
	Data      int32
}

func (ExposureUS) Category() wire.Category { return wire.CategoryVideo }

// ExposureOrdinal sets exposure by its ordinal index into the camera's
// supported exposure list.
type ExposureOrdinal struct {
	Operation wire.Operation
	Data      int16
}

func (ExposureOrdinal) Category() wire.Category { return wire.CategoryVideo }

// DynamicRangeMode selects the sensor's dynamic range curve.
type DynamicRangeMode struct {
	Operation wire.Operation
	Data      int8
}

func (DynamicRangeMode) Category() wire.Category { return wire.CategoryVideo }

// VideoSharpeningLevel sets in-camera sharpening strength.
type VideoSharpeningLevel struct {
	Operation wire.Operation
	Data      int8
}

func (VideoSharpeningLevel) Category() wire.Category { return wire.CategoryVideo }

// RecordingFormatData is the 5-tuple payload of RecordingFormat.
type RecordingFormatData struct {
	FileFrameRate   int16
	SensorFrameRate int16
	FrameWidth      int16
	FrameHeight     int16
	Flags           int16
}

// RecordingFormat sets the recorded file's frame geometry and rate,
// independently of the sensor's live capture mode.
type RecordingFormat struct {
	Operation wire.Operation
	Data      RecordingFormatData
}

func (RecordingFormat) Category() wire.Category { return wire.CategoryVideo }

// AutoExposureMode selects the automatic exposure algorithm.
type AutoExposureMode struct {
	Operation wire.Operation
	Data      int8
}

func (AutoExposureMode) Category() wire.Category { return wire.CategoryVideo }

// ShutterAngle sets exposure as a shutter angle in hundredths of a degree.
type ShutterAngle struct {
	Operation wire.Operation
	Data      int32
}

func (ShutterAngle) Category() wire.Category { return wire.CategoryVideo }

// ShutterSpeed sets exposure as a shutter speed denominator (1/speed
// seconds).
type ShutterSpeed struct {
	Operation wire.Operation
	Data      int32
}

func (ShutterSpeed) Category() wire.Category { return wire.CategoryVideo }

// Gain sets sensor gain in dB.
type Gain struct {
	Operation wire.Operation
	Data      int8
}

func (Gain) Category() wire.Category { return wire.CategoryVideo }

// ISO sets sensor sensitivity directly as an ISO value.
type ISO struct {
	Operation wire.Operation
	Data      int32
}

func (ISO) Category() wire.Category { return wire.CategoryVideo }

// DisplayLUTData is the 2-tuple payload of DisplayLUT.
type DisplayLUTData struct {
	Selected int8
	Enabled  int8
}

// DisplayLUT selects and enables a display look-up table.
type DisplayLUT struct {
	Operation wire.Operation
	Data      DisplayLUTData
}

func (DisplayLUT) Category() wire.Category { return wire.CategoryVideo }

// NDFilterStopData is the 2-tuple payload of NDFilterStop.
type NDFilterStopData struct {
	Stop        fpd.FixedPointDecimal
	DisplayMode fpd.FixedPointDecimal
}

// NDFilterStop sets the internal neutral-density filter's stop and display
// mode. When the decoder is configured with the ignore-nd-filter option,
// this parameter is instead decoded as NDFilterAction, an action-only
// variant; see zz_generated.go.
type NDFilterStop struct {
	Operation wire.Operation
	Data      NDFilterStopData
}

func (NDFilterStop) Category() wire.Category { return wire.CategoryVideo }

// NDFilterAction is the action-only form of parameter 0x10, selected when
// the decoder is configured with the ignore-nd-filter option.
type NDFilterAction struct{}

func (NDFilterAction) Category() wire.Category { return wire.CategoryVideo }
