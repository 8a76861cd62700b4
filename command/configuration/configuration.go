/*
NAME
  configuration.go

DESCRIPTION
  configuration.go declares the Configuration category (0x07) command
  variants: clock, locale, timezone, and GPS location.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package configuration implements decoding of the Configuration (0x07)
// command category.
package configuration

import "github.com/ekshore/eldritchwire/wire"

// Command is implemented by every Configuration category variant.
type Command interface {
	Category() wire.Category
}

// RealTimeClockData is the 2-tuple payload of RealTimeClock.
type RealTimeClockData struct {
	Time int32
	Date int32
}

// RealTimeClock sets the camera's real time clock.
type RealTimeClock struct {
	Operation wire.Operation
	Data      RealTimeClockData
}

func (RealTimeClock) Category() wire.Category { return wire.CategoryConfiguration }

// SystemLanguage sets the camera's UI language as a UTF-8 locale string.
type SystemLanguage struct {
	Operation wire.Operation
	Data      string
}

func (SystemLanguage) Category() wire.Category { return wire.CategoryConfiguration }

// TimeZone sets the camera's UTC offset, in minutes. The camera imposes no
// declared range on this parameter.
type TimeZone struct {
	Operation wire.Operation
	Data      int32
}

func (TimeZone) Category() wire.Category { return wire.CategoryConfiguration }

// LocationData is the 2-tuple payload of Location.
type LocationData struct {
	Latitude  int64
	Longitude int64
}

// Location sets the camera's recorded GPS location.
type Location struct {
	Operation wire.Operation
	Data      LocationData
}

func (Location) Category() wire.Category { return wire.CategoryConfiguration }
