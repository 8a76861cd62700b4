/*
NAME
  frame.go

DESCRIPTION
  frame.go implements the frame-level parser: it walks a buffer of
  concatenated command records, validates each record's header and
  4-byte-aligned padding, and dispatches each body to the command package.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame parses a wire buffer of concatenated, length-prefixed,
// 4-byte-aligned command records into a sequence of AddressedCommand
// values.
package frame

import (
	"fmt"

	"github.com/ekshore/eldritchwire/command"
	"github.com/ekshore/eldritchwire/wire"
)

// maxFrameLen is the on-wire single-frame limit; larger transports are the
// caller's concern.
const maxFrameLen = 255

// AddressedCommand pairs a decoded command with the device it targets and
// the header's command_id, which is carried but not interpreted by the
// decoder.
type AddressedCommand struct {
	DeviceID  uint8
	CommandID uint8
	Command   command.Command
}

// config is assembled by Option values passed to Parse.
type config struct {
	commandOpts command.Options
	tolerant    bool
}

// Option configures a Parse call.
type Option func(*config)

// WithBoundsChecked toggles bounds enforcement on decoded variants.
// Enabled by default.
func WithBoundsChecked(enabled bool) Option {
	return func(c *config) { c.commandOpts.BoundsChecked = enabled }
}

// WithIgnoreNDFilter toggles whether the Video NDFilterStop parameter
// decodes as its structured form or the action-only NDFilterAction.
// Disabled (structured) by default.
func WithIgnoreNDFilter(enabled bool) Option {
	return func(c *config) { c.commandOpts.IgnoreNDFilter = enabled }
}

// WithTolerant selects the tolerant parsing mode: truncation of a trailing
// record's body or padding terminates parsing and returns the records
// decoded so far, instead of failing with ErrEndOfPacket. Strict by
// default.
func WithTolerant(enabled bool) Option {
	return func(c *config) { c.tolerant = enabled }
}

// Parse decodes data, a buffer of concatenated command records, into an
// ordered sequence of AddressedCommand values. data must be no more than
// 255 bytes, the on-wire single-frame limit.
func Parse(data []byte, opts ...Option) ([]AddressedCommand, error) {
	if len(data) > maxFrameLen {
		return nil, wire.ErrPacketTooLarge
	}

	cfg := config{commandOpts: command.DefaultOptions}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out []AddressedCommand
	cursor := 0
	for cursor < len(data) {
		if len(data)-cursor < wire.HeaderLen {
			return nil, wire.ErrInvalidHeader
		}
		header, err := wire.ParseHeader(data[cursor : cursor+wire.HeaderLen])
		if err != nil {
			return nil, err
		}
		cursor += wire.HeaderLen

		bodyLen := int(header.CommandLength)
		if len(data)-cursor < bodyLen {
			if cfg.tolerant {
				return out, nil
			}
			return nil, wire.ErrEndOfPacket
		}
		body := data[cursor : cursor+bodyLen]
		cursor += bodyLen

		cmdData, err := wire.NewCommandData(body)
		if err != nil {
			return nil, err
		}
		cmd, err := command.Dispatch(cmdData, cfg.commandOpts)
		if err != nil {
			return nil, err
		}

		padLen := (4 - bodyLen%4) % 4
		if len(data)-cursor < padLen {
			if cfg.tolerant {
				return out, nil
			}
			return nil, wire.ErrEndOfPacket
		}

		// A well-formed buffer either ends exactly at the padding boundary
		// or has at least HeaderLen bytes left for the next record. Any
		// leftover shorter than that can never be a header, so it is
		// folded into this record's padding check: better to report it as
		// the padding defect it almost certainly is than to surface a
		// confusing InvalidHeader for a handful of stray trailing bytes.
		checkLen := padLen
		if rest := len(data) - cursor - padLen; rest > 0 && rest < wire.HeaderLen {
			checkLen += rest
		}
		for i := 0; i < checkLen; i++ {
			if data[cursor+i] != 0 {
				return nil, &wire.PaddingViolationError{
					Message: fmt.Sprintf("padding byte at index %d is not 0x00", i),
				}
			}
		}
		cursor += checkLen

		out = append(out, AddressedCommand{
			DeviceID:  header.DeviceID,
			CommandID: header.CommandID,
			Command:   cmd,
		})
	}
	return out, nil
}
