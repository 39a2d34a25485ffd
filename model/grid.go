package model

import (
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is one generation of the board: a square matrix of cells indexed
// [row][col]. A Grid is never modified once constructed, so it can be
// shared with renderers while the simulation computes the next one.
type Grid struct {
	size       int
	cells      [][]bool
	population int

	// Bounding box of living cells, filled in at construction
	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// newGrid allocates an all-dead grid of the given side length
func newGrid(size int) *Grid {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

// NewRandomGrid seeds a grid where every row independently gets size/3
// distinct living columns sampled without replacement. Sizes below 3
// produce an all-dead grid.
func NewRandomGrid(size int, rng *rand.Rand) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewRandomGrid] size must be positive, got: %+v", size)
	}
	if rng == nil {
		rng = NewRNG(rand.Int64())
	}

	g := newGrid(size)
	perRow := size / 3
	for row := range size {
		for _, col := range rng.Perm(size)[:perRow] {
			g.cells[row][col] = true
		}
	}
	g.calculateActiveBounds()
	return g, nil
}

// NewGridFromCells builds a grid from a square matrix of 0/1 values
func NewGridFromCells(cells [][]int) (*Grid, error) {
	if err := validateCells(cells); err != nil {
		return nil, errors.Wrapf(ErrMalformedGrid, "[NewGridFromCells] %v", err)
	}
	return gridFromValidCells(cells), nil
}

// validateCells reports why cells is not a non-empty square 0/1 matrix
func validateCells(cells [][]int) error {
	if len(cells) == 0 {
		return errors.New("no rows")
	}
	size := len(cells)
	for row, values := range cells {
		if len(values) != size {
			return errors.Errorf("row %d has %d columns, want %d", row, len(values), size)
		}
		for col, v := range values {
			if v != 0 && v != 1 {
				return errors.Errorf("cell (%d,%d) has value %d, want 0 or 1", row, col, v)
			}
		}
	}
	return nil
}

func gridFromValidCells(cells [][]int) *Grid {
	g := newGrid(len(cells))
	for row, values := range cells {
		for col, v := range values {
			g.cells[row][col] = v == 1
		}
	}
	g.calculateActiveBounds()
	return g
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// IsAlive returns the state of a cell; positions off the board are dead
func (g *Grid) IsAlive(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.cells[row][col]
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// Positions outside the board are skipped; there is no wraparound.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// AnyAlive reports whether at least one cell is alive
func (g *Grid) AnyAlive() bool {
	return g.population > 0
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return g.population
}

// Equals reports whether both grids have the same size and cell states
func (g *Grid) Equals(other *Grid) bool {
	if other == nil || g.size != other.size || g.population != other.population {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Cells exports the grid as a fresh [row][col] matrix of 0/1 values
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.size)
	for row := range g.size {
		out[row] = make([]int, g.size)
		for col := range g.size {
			if g.cells[row][col] {
				out[row][col] = 1
			}
		}
	}
	return out
}

// calculateActiveBounds records the population and bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false
	g.population = 0

	for row := range g.size {
		for col := range g.size {
			if !g.cells[row][col] {
				continue
			}
			g.population++
			if !g.activeBounds.valid {
				g.activeBounds.minRow = row
				g.activeBounds.maxRow = row
				g.activeBounds.minCol = col
				g.activeBounds.maxCol = col
				g.activeBounds.valid = true
			} else {
				g.activeBounds.minRow = min(g.activeBounds.minRow, row)
				g.activeBounds.maxRow = max(g.activeBounds.maxRow, row)
				g.activeBounds.minCol = min(g.activeBounds.minCol, col)
				g.activeBounds.maxCol = max(g.activeBounds.maxCol, col)
			}
		}
	}
}

// BoundingBoxSize returns the area of the active region
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}

// NextGeneration computes the following generation into a new grid.
// A nil rule means standard Conway rules.
func (g *Grid) NextGeneration(rule rules.Rule, bounded bool) *Grid {
	if rule == nil {
		rule = rules.ApplyConwayRules
	}
	if bounded {
		return g.nextGenerationBounded(rule)
	}
	return g.nextGenerationParallel(rule)
}

// nextGenerationParallel splits rows across workers. Every worker reads g
// and writes only its own rows of next; next is not published until all
// workers have finished.
func (g *Grid) nextGenerationParallel(rule rules.Rule) *Grid {
	next := newGrid(g.size)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := range g.size {
					if rule(g.CountNeighbors(row, col), g.cells[row][col]) {
						next.cells[row][col] = true
					}
				}
			}
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	next.calculateActiveBounds()
	return next
}

// nextGenerationBounded only visits the active region plus a one-cell
// margin. Rules that give birth with zero neighbors need the full sweep.
func (g *Grid) nextGenerationBounded(rule rules.Rule) *Grid {
	if rule(0, false) {
		return g.nextGenerationParallel(rule)
	}

	next := newGrid(g.size)
	if !g.activeBounds.valid {
		return next
	}

	minRow := max(0, g.activeBounds.minRow-1)
	maxRow := min(g.size-1, g.activeBounds.maxRow+1)
	minCol := max(0, g.activeBounds.minCol-1)
	maxCol := min(g.size-1, g.activeBounds.maxCol+1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if rule(g.CountNeighbors(row, col), g.cells[row][col]) {
				next.cells[row][col] = true
			}
		}
	}

	next.calculateActiveBounds()
	return next
}
