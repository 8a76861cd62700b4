/*
NAME
  lens_test.go

DESCRIPTION
  lens_test.go tests decoding of Lens category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package lens

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

// TestDecodeFocusIncrement covers spec scenario S1.
func TestDecodeFocusIncrement(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0x00, 0x80, 0x01, 0x33, 0x01})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := Focus{Operation: wire.Increment, Data: fpd.New(0x0133)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFocusOutOfBounds(t *testing.T) {
	// Spec scenario S7: focus value 1.1 with bounds enabled.
	data := mustCommandData(t, []byte{0x00, 0x00, 0x80, 0x00, 0xcc, 0x08})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeFocusBoundsDisabled(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0x00, 0x80, 0x00, 0xcc, 0x08})
	_, err := Decode(data, false)
	if err != nil {
		t.Fatalf("Decode() with bounds disabled = %v, want nil", err)
	}
}

func TestDecodeInstantaneousAutoFocus(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0x01, 0x00, 0x00})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := got.(InstantaneousAutoFocus); !ok {
		t.Fatalf("Decode() = %T, want InstantaneousAutoFocus", got)
	}
}

func TestDecodeOpticalImageStabilizationRejectsToggle(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0x06, 0x00, 0x01})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}

func TestDecodeWrongDataType(t *testing.T) {
	// Focus declares data_type 0x80 (FPD); supply 0x01 (int8) instead.
	data := mustCommandData(t, []byte{0x00, 0x00, 0x01, 0x00, 0x33})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0xff, 0x00, 0x00})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}

func TestDecodeApertureFStopAtUpperBoundary(t *testing.T) {
	// 0x7fff == 15.9995, the largest representable FPD value, which lies
	// inside the inclusive [-1.0, 16.0] range.
	data := mustCommandData(t, []byte{0x00, 0x02, 0x80, 0x00, 0xff, 0x7f})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := ApertureFStop{Operation: wire.Assign, Data: fpd.New(0x7fff)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(fpd.FixedPointDecimal{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}
