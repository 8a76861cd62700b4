/*
NAME
  display_test.go

DESCRIPTION
  display_test.go tests decoding of Display category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package display

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

func TestDecodeBrightnessAssign(t *testing.T) {
	data := mustCommandData(t, []byte{0x04, 0x00, 0x80, 0x00, 0x00, 0x08})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := Brightness{Operation: wire.Assign, Data: fpd.New(0x0800)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeColorBarsDisplayTimeOutOfBounds(t *testing.T) {
	data := mustCommandData(t, []byte{0x04, 0x04, 0x01, 0x00, 0x1f})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeFocusAssist(t *testing.T) {
	data := mustCommandData(t, []byte{0x04, 0x05, 0x01, 0x00, 0x01, 0x02})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := FocusAssist{Operation: wire.Assign, Data: FocusAssistData{Method: 1, Color: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x04, 0xff, 0x00, 0x00})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}
