/*
NAME
  registerfile.go

DESCRIPTION
  registerfile.go adapts the peripheral's fixed I²C register map (spec §6)
  to periph's mmr.Dev16, exposing the channel arm/length/data sequences the
  decoder's consumers use to move command frames to and from the device.
  It is a thin, blocking transport; it does not touch the frame or command
  packages.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package registerfile talks to the companion peripheral described in the
// decoder's wire spec: a small, fixed I²C register map that carries opaque
// command-frame bytes between host and device over two channels, "control"
// and "tally", each with an independent outgoing and incoming direction.
package registerfile

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/mmr"
)

// Register addresses, per the companion register transport table.
const (
	regIdentity        = 0x0000
	regHardwareVersion = 0x0004
	regFirmwareVersion = 0x0006
	regSystemControl   = 0x1000

	regOutputControlArm    = 0x2000
	regOutputControlLength = 0x2001
	regOutputControlData   = 0x2100

	regIncomingControlArm    = 0x3000
	regIncomingControlLength = 0x3001
	regIncomingControlData   = 0x3100

	regOutputTallyArm    = 0x4000
	regOutputTallyLength = 0x4001
	regOutputTallyData   = 0x4100

	regIncomingTallyArm    = 0x5000
	regIncomingTallyLength = 0x5001
	regIncomingTallyData   = 0x5100
)

// maxChannelPayload is the declared ceiling on a channel's data register.
const maxChannelPayload = 254

// MaxChannelPayload reports the largest payload a channel's data register
// can carry.
func MaxChannelPayload() int { return maxChannelPayload }

// ErrPayloadTooLarge is returned when a caller tries to arm a channel with
// more than MaxChannelPayload bytes.
var ErrPayloadTooLarge = errors.New("registerfile: payload exceeds channel maximum")

// SystemControl decodes the system control bit-field at 0x1000.
type SystemControl struct {
	ControlOverride bool
	TallyOverride   bool
	ResetTally      bool // write-1-to-trigger; a read reports bit 2 as the register holds it
	OutputOverride  bool
}

func (s SystemControl) byte() byte {
	var b byte
	if s.ControlOverride {
		b |= 1 << 0
	}
	if s.TallyOverride {
		b |= 1 << 1
	}
	if s.ResetTally {
		b |= 1 << 2
	}
	if s.OutputOverride {
		b |= 1 << 3
	}
	return b
}

func systemControlFromByte(b byte) SystemControl {
	return SystemControl{
		ControlOverride: b&(1<<0) != 0,
		TallyOverride:   b&(1<<1) != 0,
		ResetTally:      b&(1<<2) != 0,
		OutputOverride:  b&(1<<3) != 0,
	}
}

// Version is a major.minor pair as reported by the hardware or firmware
// version registers.
type Version struct {
	Major uint8
	Minor uint8
}

// channel identifies one of the four arm/length/data register triples.
type channel struct {
	arm, length, data uint16
}

var (
	outputControl   = channel{regOutputControlArm, regOutputControlLength, regOutputControlData}
	incomingControl = channel{regIncomingControlArm, regIncomingControlLength, regIncomingControlData}
	outputTally     = channel{regOutputTallyArm, regOutputTallyLength, regOutputTallyData}
	incomingTally   = channel{regIncomingTallyArm, regIncomingTallyLength, regIncomingTallyData}
)

// RegisterFile is the companion peripheral's register map, reachable over
// I²C. The zero value is not usable; construct with New.
type RegisterFile struct {
	dev mmr.Dev16
}

// New wraps an I²C device at addr on bus as a RegisterFile. Register
// addresses and multi-byte fields are little-endian, per spec.
func New(bus i2c.Bus, addr uint16) *RegisterFile {
	return &RegisterFile{
		dev: mmr.Dev16{Conn: &i2c.Dev{Bus: bus, Addr: addr}, Order: binary.LittleEndian},
	}
}

// Identity reads the peripheral's 4-byte identity string.
func (r *RegisterFile) Identity() (string, error) {
	b := make([]byte, 4)
	if err := r.dev.ReadStruct(regIdentity, &b); err != nil {
		return "", errors.Wrap(err, "registerfile: read identity")
	}
	return string(b), nil
}

// HardwareVersion reads the peripheral's hardware version.
func (r *RegisterFile) HardwareVersion() (Version, error) {
	return r.readVersion(regHardwareVersion)
}

// FirmwareVersion reads the peripheral's firmware version.
func (r *RegisterFile) FirmwareVersion() (Version, error) {
	return r.readVersion(regFirmwareVersion)
}

func (r *RegisterFile) readVersion(reg uint16) (Version, error) {
	v, err := r.dev.ReadUint16(reg)
	if err != nil {
		return Version{}, errors.Wrap(err, "registerfile: read version")
	}
	return Version{Major: uint8(v), Minor: uint8(v >> 8)}, nil
}

// SystemControl reads the system control bit-field.
func (r *RegisterFile) SystemControl() (SystemControl, error) {
	b, err := r.dev.ReadUint8(regSystemControl)
	if err != nil {
		return SystemControl{}, errors.Wrap(err, "registerfile: read system control")
	}
	return systemControlFromByte(b), nil
}

// SetSystemControl writes the system control bit-field. ResetTally is
// write-1-to-trigger: the peripheral clears it after acting on it.
func (r *RegisterFile) SetSystemControl(s SystemControl) error {
	if err := r.dev.WriteUint8(regSystemControl, s.byte()); err != nil {
		return errors.Wrap(err, "registerfile: write system control")
	}
	return nil
}

// SendControl arms the outgoing control channel with payload. It returns
// once the arm register is written; it does not wait for the peripheral to
// accept the payload.
func (r *RegisterFile) SendControl(payload []byte) error {
	return r.send(outputControl, payload)
}

// SendTally arms the outgoing tally channel with payload.
func (r *RegisterFile) SendTally(payload []byte) error {
	return r.send(outputTally, payload)
}

// ReceiveControl reads whatever the peripheral has queued on the incoming
// control channel.
func (r *RegisterFile) ReceiveControl() ([]byte, error) {
	return r.receive(incomingControl)
}

// ReceiveTally reads whatever the peripheral has queued on the incoming
// tally channel.
func (r *RegisterFile) ReceiveTally() ([]byte, error) {
	return r.receive(incomingTally)
}

func (r *RegisterFile) send(ch channel, payload []byte) error {
	if len(payload) > maxChannelPayload {
		return ErrPayloadTooLarge
	}
	if err := r.dev.WriteUint8(ch.length, uint8(len(payload))); err != nil {
		return errors.Wrap(err, "registerfile: write channel length")
	}
	buf := append([]byte{}, payload...)
	if err := r.dev.WriteStruct(ch.data, &buf); err != nil {
		return errors.Wrap(err, "registerfile: write channel data")
	}
	if err := r.dev.WriteUint8(ch.arm, 1); err != nil {
		return errors.Wrap(err, "registerfile: arm channel")
	}
	return nil
}

func (r *RegisterFile) receive(ch channel) ([]byte, error) {
	n, err := r.dev.ReadUint8(ch.length)
	if err != nil {
		return nil, errors.Wrap(err, "registerfile: read channel length")
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.dev.ReadStruct(ch.data, &buf); err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("registerfile: read %d channel data bytes", n))
	}
	return buf, nil
}
