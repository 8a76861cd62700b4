/*
NAME
  media_test.go

DESCRIPTION
  media_test.go tests decoding of Media category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package media

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

func TestDecodeCodec(t *testing.T) {
	data := mustCommandData(t, []byte{0x0a, 0x00, 0x01, 0x00, 0x02, 0x01})
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := Codec{Operation: wire.Assign, Data: CodecData{BasicCodec: 2, CodecVariant: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTransportMode(t *testing.T) {
	data := mustCommandData(t, []byte{0x0a, 0x01, 0x01, 0x00, 0x01, 0x02, 0x00, 0x01, 0x00})
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := TransportMode{
		Operation: wire.Assign,
		Data: TransportModeData{
			Mode: 1, Speed: 2, Flags: 0, SlotOneStorageMedium: 1, SlotTwoStorageMedium: 0,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x0a, 0xff, 0x00, 0x00})
	_, err := Decode(data)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}
