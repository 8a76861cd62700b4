/*
NAME
  video_test.go

DESCRIPTION
  video_test.go tests decoding of Video category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package video

import (
	"testing"

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

// TestDecodeVideoMode covers spec scenario S4.
func TestDecodeVideoMode(t *testing.T) {
	data := mustCommandData(t, []byte{0x01, 0x00, 0x01, 0x00, 0x18, 0x01, 0x03, 0x00, 0x00})
	got, err := Decode(data, true, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := VideoMode{
		Operation: wire.Assign,
		Data:      VideoModeData{FrameRate: 24, MRate: 1, Dimensions: 3, Interlaced: 0, ColorSpace: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeExposureUSOutOfBounds(t *testing.T) {
	data := mustCommandData(t, []byte{0x01, 0x05, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00})
	_, err := Decode(data, true, false)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeExposureUSAssign(t *testing.T) {
	// Spec scenario S2's command body (0x04 08 00 00 prefix is the frame
	// header, not part of the body decoded here).
	data := mustCommandData(t, []byte{0x01, 0x05, 0x03, 0x00, 0x10, 0x27, 0x00, 0x00})
	got, err := Decode(data, true, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := ExposureUS{Operation: wire.Assign, Data: 10000}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNDFilterStopActionWhenIgnored(t *testing.T) {
	data := mustCommandData(t, []byte{0x01, 0x10, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00})
	got, err := Decode(data, true, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := got.(NDFilterAction); !ok {
		t.Fatalf("Decode() = %T, want NDFilterAction", got)
	}
}
