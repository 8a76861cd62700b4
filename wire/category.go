/*
NAME
  category.go

DESCRIPTION
  category.go enumerates the top-level command categories addressed by the
  first byte of a command body.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wire

// Category identifies the camera subsystem a command targets.
type Category uint8

const (
	CategoryLens            Category = 0x00
	CategoryVideo           Category = 0x01
	CategoryAudio           Category = 0x02
	CategoryOutput          Category = 0x03
	CategoryDisplay         Category = 0x04
	CategoryTally           Category = 0x05
	CategoryReference       Category = 0x06
	CategoryConfiguration   Category = 0x07
	CategoryColorCorrection Category = 0x08
	CategoryMedia           Category = 0x0a
	CategoryPTZControl      Category = 0x0b
)

func (c Category) String() string {
	switch c {
	case CategoryLens:
		return "Lens"
	case CategoryVideo:
		return "Video"
	case CategoryAudio:
		return "Audio"
	case CategoryOutput:
		return "Output"
	case CategoryDisplay:
		return "Display"
	case CategoryTally:
		return "Tally"
	case CategoryReference:
		return "Reference"
	case CategoryConfiguration:
		return "Configuration"
	case CategoryColorCorrection:
		return "ColorCorrection"
	case CategoryMedia:
		return "Media"
	case CategoryPTZControl:
		return "PtzControl"
	default:
		return "Unknown"
	}
}
