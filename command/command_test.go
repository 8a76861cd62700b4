/*
NAME
  command_test.go

DESCRIPTION
  command_test.go tests Dispatch's routing across every category.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package command

import (
	"testing"

	"github.com/ekshore/eldritchwire/command/lens"
	"github.com/ekshore/eldritchwire/command/video"
	"github.com/ekshore/eldritchwire/wire"
)

func mustCommandData(t *testing.T, b []byte) wire.CommandData {
	t.Helper()
	cd, err := wire.NewCommandData(b)
	if err != nil {
		t.Fatalf("NewCommandData: %v", err)
	}
	return cd
}

// TestDispatchLens covers spec scenario S1, exercised through the
// top-level dispatcher rather than the lens package directly.
func TestDispatchLens(t *testing.T) {
	data := mustCommandData(t, []byte{0x00, 0x00, 0x80, 0x01, 0x33, 0x01})
	got, err := Dispatch(data, DefaultOptions)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := got.(lens.Focus); !ok {
		t.Fatalf("Dispatch() = %T, want lens.Focus", got)
	}
	if got.Category() != wire.CategoryLens {
		t.Errorf("Category() = %v, want CategoryLens", got.Category())
	}
}

func TestDispatchVideoIgnoreNDFilter(t *testing.T) {
	data := mustCommandData(t, []byte{0x01, 0x10, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00})
	got, err := Dispatch(data, Options{BoundsChecked: true, IgnoreNDFilter: true})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := got.(video.NDFilterAction); !ok {
		t.Fatalf("Dispatch() = %T, want video.NDFilterAction", got)
	}
}

func TestDispatchUnknownCategory(t *testing.T) {
	data := mustCommandData(t, []byte{0xfe, 0x00, 0x00, 0x00})
	_, err := Dispatch(data, DefaultOptions)
	if _, ok := err.(*wire.InvalidCommandDataError); !ok {
		t.Fatalf("Dispatch() error = %v, want *wire.InvalidCommandDataError", err)
	}
}

// TestDispatchAllCategories checks that every declared category routes
// without error given a minimal valid action or scalar body.
func TestDispatchAllCategories(t *testing.T) {
	cases := []struct {
		name string
		body []byte
	}{
		{"Lens", []byte{0x00, 0x01, 0x00, 0x00}},
		{"Video", []byte{0x01, 0x03, 0x00, 0x00}},
		{"Audio", []byte{0x02, 0x06, 0x00, 0x00, 0x00}},
		{"Output", []byte{0x03, 0x00, 0x02, 0x00, 0x00, 0x00}},
		{"Display", []byte{0x04, 0x01, 0x02, 0x00, 0x00, 0x00}},
		{"Tally", []byte{0x05, 0x00, 0x80, 0x00, 0x00, 0x00}},
		{"Reference", []byte{0x06, 0x00, 0x01, 0x00, 0x00}},
		{"Configuration", []byte{0x07, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"ColorCorrection", []byte{0x08, 0x07, 0x00, 0x00}},
		{"Media", []byte{0x0a, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{"PtzControl", []byte{0x0b, 0x01, 0x01, 0x00, 0x00, 0x00}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := mustCommandData(t, c.body)
			got, err := Dispatch(data, DefaultOptions)
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			want := wire.Category(c.body[0])
			if got.Category() != want {
				t.Errorf("Category() = %v, want %v", got.Category(), want)
			}
		})
	}
}
