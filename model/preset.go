package model

import (
	"sort"

	"github.com/pkg/errors"
)

const patternSide = 3

// Presets is a read-only lookup table of named starting boards. Patterns
// are flat 3x3 matrices placed in the middle of a blank board; Grids are
// full square boards used verbatim.
type Presets struct {
	Patterns map[string][]int   `json:"patterns"`
	Grids    map[string][][]int `json:"grids"`
}

// Names returns every preset name in sorted order
func (p *Presets) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Patterns)+len(p.Grids))
	for name := range p.Grids {
		names = append(names, name)
	}
	for name := range p.Patterns {
		if _, ok := p.Grids[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NewGridFromPreset builds the named preset. A full-board preset is used
// as stored and size is ignored; a 3x3 pattern is centered on a blank
// board of the given size.
func NewGridFromPreset(name string, presets *Presets, size int) (*Grid, error) {
	if presets != nil {
		if cells, ok := presets.Grids[name]; ok {
			if err := validateCells(cells); err != nil {
				return nil, errors.Wrapf(ErrPresetMalformed, "[NewGridFromPreset] grid %q: %v", name, err)
			}
			return gridFromValidCells(cells), nil
		}
		if pattern, ok := presets.Patterns[name]; ok {
			return gridFromPattern(name, pattern, size)
		}
	}
	return nil, errors.Wrapf(ErrPresetNotFound, "[NewGridFromPreset] name: %+v", name)
}

func gridFromPattern(name string, pattern []int, size int) (*Grid, error) {
	if len(pattern) != patternSide*patternSide {
		return nil, errors.Wrapf(ErrPresetMalformed,
			"[NewGridFromPreset] pattern %q has %d values, want %d", name, len(pattern), patternSide*patternSide)
	}
	if size < patternSide {
		return nil, errors.Wrapf(ErrInvalidSize,
			"[NewGridFromPreset] pattern %q needs size >= %d, got: %+v", name, patternSide, size)
	}

	g := newGrid(size)
	offset := (size - patternSide) / 2
	for i, v := range pattern {
		switch v {
		case 0:
		case 1:
			g.cells[offset+i/patternSide][offset+i%patternSide] = true
		default:
			return nil, errors.Wrapf(ErrPresetMalformed,
				"[NewGridFromPreset] pattern %q has value %d at index %d, want 0 or 1", name, v, i)
		}
	}
	g.calculateActiveBounds()
	return g, nil
}
