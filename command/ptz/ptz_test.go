/*
NAME
  ptz_test.go

DESCRIPTION
  ptz_test.go tests decoding of PtzControl category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ptz

import (
	"testing"

	"github.com/ekshore/eldritchwire/fpd"
	"github.com/ekshore/eldritchwire/wire"
	"github.com/google/go-cmp/cmp"
)

func mustCommandData(t *testing.T, b []byte) wire.CommandData {
	t.Helper()
	cd, err := wire.NewCommandData(b)
	if err != nil {
		t.Fatalf("NewCommandData: %v", err)
	}
	return cd
}

func TestDecodePanTiltVelocity(t *testing.T) {
	data := mustCommandData(t, []byte{0x0b, 0x00, 0x80, 0x00, 0x00, 0x04, 0x00, 0xfc})
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := PanTiltVelocity{
		Operation: wire.Assign,
		Data:      PanTiltVelocityData{PanVelocity: fpd.New(0x0400), TiltVelocity: fpd.New(-1024)}, // tilt raw 0xfc00
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMemoryPreset(t *testing.T) {
	data := mustCommandData(t, []byte{0x0b, 0x01, 0x01, 0x00, 0x01, 0x03})
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := MemoryPreset{Operation: wire.Assign, Data: MemoryPresetData{PresetCommand: 1, PresetSlot: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x0b, 0xff, 0x00, 0x00})
	_, err := Decode(data)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}
