/*
NAME
  reference_test.go

DESCRIPTION
  reference_test.go tests decoding of Reference category command bodies.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package reference

import (
	"math"
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

func TestDecodeSourceOutOfBounds(t *testing.T) {
	data := mustCommandData(t, []byte{0x06, 0x00, 0x01, 0x00, 0x02})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.DataOutOfBoundsError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.DataOutOfBoundsError", err)
	}
}

func TestDecodeOffsetUnbounded(t *testing.T) {
	data := mustCommandData(t, []byte{0x06, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00, 0x80})
	got, err := Decode(data, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := Offset{Operation: wire.Assign, Data: math.MinInt32}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknownParameter(t *testing.T) {
	data := mustCommandData(t, []byte{0x06, 0xff, 0x00, 0x00})
	_, err := Decode(data, true)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Decode() error = %v, want *wire.InvalidCommandDataError", err)
	}
}
