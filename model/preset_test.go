package model

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func testPresets() *Presets {
	return &Presets{
		Patterns: map[string][]int{
			"glider": {0, 1, 0, 0, 0, 1, 1, 1, 1},
			"short":  {1, 1, 1},
			"bad":    {0, 0, 0, 0, 3, 0, 0, 0, 0},
			"shared": {1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		Grids: map[string][][]int{
			"block":  {{1, 1}, {1, 1}},
			"ragged": {{1, 1}, {1}},
			"shared": {{0, 0}, {0, 1}},
		},
	}
}

func TestNewGridFromPresetNotFound(t *testing.T) {
	if _, err := NewGridFromPreset("missing", &Presets{}, 10); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("empty store: err = %v, want ErrPresetNotFound", err)
	}
	if _, err := NewGridFromPreset("missing", nil, 10); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("nil store: err = %v, want ErrPresetNotFound", err)
	}
	if _, err := NewGridFromPreset("missing", testPresets(), 10); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("populated store: err = %v, want ErrPresetNotFound", err)
	}
}

func TestNewGridFromPresetFullGrid(t *testing.T) {
	g, err := NewGridFromPreset("block", testPresets(), 50)
	if err != nil {
		t.Fatalf("NewGridFromPreset: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Size = %d, want 2 (size argument ignored)", g.Size())
	}
	if g.CountLivingCells() != 4 {
		t.Fatalf("CountLivingCells = %d, want 4", g.CountLivingCells())
	}
}

func TestNewGridFromPresetPatternCentered(t *testing.T) {
	g, err := NewGridFromPreset("glider", testPresets(), 5)
	if err != nil {
		t.Fatalf("NewGridFromPreset: %v", err)
	}
	want := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	if !reflect.DeepEqual(g.Cells(), want) {
		t.Fatalf("got %v, want %v", g.Cells(), want)
	}
}

func TestNewGridFromPresetGridsTakePrecedence(t *testing.T) {
	g, err := NewGridFromPreset("shared", testPresets(), 9)
	if err != nil {
		t.Fatalf("NewGridFromPreset: %v", err)
	}
	if g.Size() != 2 || !g.IsAlive(1, 1) {
		t.Fatalf("expected the full grid preset, got %v", g.Cells())
	}
}

func TestNewGridFromPresetErrors(t *testing.T) {
	cases := []struct {
		name   string
		preset string
		size   int
		want   error
	}{
		{"ragged grid", "ragged", 10, ErrPresetMalformed},
		{"short pattern", "short", 10, ErrPresetMalformed},
		{"bad pattern value", "bad", 10, ErrPresetMalformed},
		{"pattern too big for board", "glider", 2, ErrInvalidSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGridFromPreset(tc.preset, testPresets(), tc.size)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if g != nil {
				t.Fatal("expected nil grid on error")
			}
		})
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"bad", "block", "glider", "ragged", "shared", "short"}
	if got := testPresets().Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}

	var nilPresets *Presets
	if got := nilPresets.Names(); got != nil {
		t.Fatalf("nil Names = %v, want nil", got)
	}
}
