/*
NAME
  audio_test.go

DESCRIPTION
  audio_test.go tests decoding of Audio category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package audio

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

func TestDecodeMicLevelAssign(t *testing.T) {
	// Category Audio (0x02), param MicLevel (0x00), data_type FPD (0x80),
	// operation Assign (0x00), value 0.5 (raw 1024 = 0x0400).
	data := mustCommandData(t, []byte{0x02, 0x00, 0x80, 0x00, 0x00, 0x04})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := MicLevel{Operation: wire.Assign, Data: fpd.New(0x0400)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSpeakerLevelOutOfBounds(t *testing.T) {
	// raw 0x0900 = 1.125, outside the [0.0, 1.0] bound.
	data := mustCommandData(t, []byte{0x02, 0x03, 0x80, 0x00, 0x00, 0x09})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeInputLevels(t *testing.T) {
	data := mustCommandData(t, []byte{0x02, 0x05, 0x80, 0x00, 0x00, 0x04, 0x00, 0x02})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := InputLevels{
		Operation: wire.Assign,
		Data:      InputLevelsData{ChannelOne: fpd.New(0x0400), ChannelTwo: fpd.New(0x0200)},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePhantomPowerRejectsToggle(t *testing.T) {
	data := mustCommandData(t, []byte{0x02, 0x06, 0x00, 0x01, 0x01})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}

func TestDecodePhantomPowerAssign(t *testing.T) {
	data := mustCommandData(t, []byte{0x02, 0x06, 0x00, 0x00, 0x01})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := PhantomPower{Operation: wire.Assign, Data: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInputTypeOutOfBounds(t *testing.T) {
	data := mustCommandData(t, []byte{0x02, 0x04, 0x01, 0x00, 0x05})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x02, 0xff, 0x00, 0x00})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}
