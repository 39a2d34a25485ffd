package model

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer prints grids as text blocks
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer writes to out, or to stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	var b strings.Builder
	b.Grow(g.Size() * (g.Size()*len(gridPosBlock) + 1))
	for row := range g.Size() {
		for col := range g.Size() {
			if g.IsAlive(row, col) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
