/*
NAME
  registerfile_test.go

DESCRIPTION
  registerfile_test.go exercises RegisterFile against a fake I²C bus that
  models the peripheral's register file in memory.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package registerfile

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeBus models the peripheral's register file as a byte-addressed map,
// enough to exercise mmr.Dev16's wire encoding without real hardware.
type fakeBus struct {
	addr uint16
	regs map[uint16][]byte
}

func newFakeBus(addr uint16) *fakeBus {
	return &fakeBus{addr: addr, regs: make(map[uint16][]byte)}
}

func (b *fakeBus) String() string { return "fakeBus" }

func (b *fakeBus) Speed(hz int64) error { return nil }

// Tx implements i2c.Bus. A write transaction's w is [reg_lo, reg_hi,
// data...]; a read transaction's w is the 2-byte register address and r is
// filled from the stored register contents.
func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		return fmt.Errorf("fakeBus: unexpected address %#x, want %#x", addr, b.addr)
	}
	if len(w) < 2 {
		return fmt.Errorf("fakeBus: short write %v", w)
	}
	reg := binary.LittleEndian.Uint16(w[:2])
	if len(r) > 0 {
		stored := b.regs[reg]
		n := copy(r, stored)
		for ; n < len(r); n++ {
			r[n] = 0
		}
		return nil
	}
	b.regs[reg] = append([]byte{}, w[2:]...)
	return nil
}

func (b *fakeBus) set(reg uint16, data []byte) {
	b.regs[reg] = append([]byte{}, data...)
}

func TestIdentity(t *testing.T) {
	bus := newFakeBus(0x40)
	bus.set(regIdentity, []byte("ELDR"))
	rf := New(bus, 0x40)

	got, err := rf.Identity()
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if got != "ELDR" {
		t.Errorf("Identity() = %q, want %q", got, "ELDR")
	}
}

func TestVersions(t *testing.T) {
	bus := newFakeBus(0x40)
	bus.set(regHardwareVersion, []byte{2, 1})
	bus.set(regFirmwareVersion, []byte{9, 0})
	rf := New(bus, 0x40)

	hw, err := rf.HardwareVersion()
	if err != nil {
		t.Fatalf("HardwareVersion: %v", err)
	}
	if diff := cmp.Diff(Version{Major: 2, Minor: 1}, hw); diff != "" {
		t.Errorf("HardwareVersion() mismatch (-want +got):\n%s", diff)
	}

	fw, err := rf.FirmwareVersion()
	if err != nil {
		t.Fatalf("FirmwareVersion: %v", err)
	}
	if diff := cmp.Diff(Version{Major: 9, Minor: 0}, fw); diff != "" {
		t.Errorf("FirmwareVersion() mismatch (-want +got):\n%s", diff)
	}
}

func TestSystemControlRoundTrip(t *testing.T) {
	bus := newFakeBus(0x40)
	rf := New(bus, 0x40)

	want := SystemControl{ControlOverride: true, OutputOverride: true}
	if err := rf.SetSystemControl(want); err != nil {
		t.Fatalf("SetSystemControl: %v", err)
	}
	got, err := rf.SystemControl()
	if err != nil {
		t.Fatalf("SystemControl: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SystemControl() mismatch (-want +got):\n%s", diff)
	}
}

func TestSendControlArmsChannel(t *testing.T) {
	bus := newFakeBus(0x40)
	rf := New(bus, 0x40)

	payload := []byte{0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x80, 0x01, 0x33, 0x01, 0x00, 0x00}
	if err := rf.SendControl(payload); err != nil {
		t.Fatalf("SendControl: %v", err)
	}
	if got := bus.regs[regOutputControlLength][0]; got != byte(len(payload)) {
		t.Errorf("length register = %d, want %d", got, len(payload))
	}
	if diff := cmp.Diff(payload, bus.regs[regOutputControlData]); diff != "" {
		t.Errorf("data register mismatch (-want +got):\n%s", diff)
	}
	if got := bus.regs[regOutputControlArm][0]; got != 1 {
		t.Errorf("arm register = %d, want 1", got)
	}
}

func TestSendControlPayloadTooLarge(t *testing.T) {
	bus := newFakeBus(0x40)
	rf := New(bus, 0x40)

	err := rf.SendControl(make([]byte, 255))
	if err != ErrPayloadTooLarge {
		t.Fatalf("SendControl() error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestReceiveTally(t *testing.T) {
	bus := newFakeBus(0x40)
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	bus.set(regIncomingTallyLength, []byte{byte(len(payload))})
	bus.set(regIncomingTallyData, payload)
	rf := New(bus, 0x40)

	got, err := rf.ReceiveTally()
	if err != nil {
		t.Fatalf("ReceiveTally: %v", err)
	}
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("ReceiveTally() mismatch (-want +got):\n%s", diff)
	}
}

func TestReceiveControlEmpty(t *testing.T) {
	bus := newFakeBus(0x40)
	rf := New(bus, 0x40)

	got, err := rf.ReceiveControl()
	if err != nil {
		t.Fatalf("ReceiveControl: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReceiveControl() = %v, want empty", got)
	}
}
