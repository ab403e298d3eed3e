// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// MemoryMode controls how many time columns a ValueGrid keeps.
//
//   - FullGrid       — keep all N columns. Every (i, j) stays readable.
//     Memory: O(M·N).
//
//   - RollingColumns — keep only the current and previous column. Enough to
//     step the schemes, since column j depends only on column j−1, and to
//     extract the final price. Memory: O(M).
type MemoryMode int

const (
	// FullGrid stores every column.
	FullGrid MemoryMode = iota

	// RollingColumns stores two columns and reuses them alternately.
	RollingColumns
)

// String returns "full" or "rolling".
func (m MemoryMode) String() string {
	switch m {
	case FullGrid:
		return "full"
	case RollingColumns:
		return "rolling"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ValueGrid is the M×N matrix of transformed option values y(x_i, τ_j).
// Storage is column-major so that a time column is one contiguous slice.
type ValueGrid struct {
	m, n int        // rows (space) and logical columns (time)
	mode MemoryMode // storage policy
	held int        // physical columns: n or 2
	top  int        // highest column index handed out so far
	data []float64  // held·m values, column-major
}

// NewValueGrid allocates an m×n grid in the given mode.
// Errors: ErrTooFewPoints (m < 3 or n < 2), ErrBadMode.
// Complexity: O(m·n) for FullGrid, O(m) for RollingColumns.
func NewValueGrid(m, n int, mode MemoryMode) (*ValueGrid, error) {
	// Stage 1: validate shape and mode.
	if m < MinSpacePoints || n < MinTimePoints {
		return nil, gridErrorf(opValueGrid, ErrTooFewPoints)
	}
	held := n
	switch mode {
	case FullGrid:
	case RollingColumns:
		held = 2
	default:
		return nil, gridErrorf(opValueGrid, ErrBadMode)
	}

	// Stage 2: allocate flat storage.
	return &ValueGrid{m: m, n: n, mode: mode, held: held, data: make([]float64, held*m)}, nil
}

// Rows returns M.
func (g *ValueGrid) Rows() int { return g.m }

// Cols returns N, the logical number of time columns.
func (g *ValueGrid) Cols() int { return g.n }

// Mode returns the storage policy.
func (g *ValueGrid) Mode() MemoryMode { return g.mode }

// Column returns the writable slice backing time column j.
//
// In RollingColumns mode, asking for column j recycles the slot of column j−2;
// afterwards only columns j−1 and j are readable.
func (g *ValueGrid) Column(j int) ([]float64, error) {
	if j < 0 || j >= g.n {
		return nil, fmt.Errorf("ValueGrid.Column(%d): %w", j, ErrOutOfRange)
	}
	if g.mode == RollingColumns && j < g.top-1 {
		return nil, fmt.Errorf("ValueGrid.Column(%d): %w", j, ErrColumnEvicted)
	}
	if j > g.top {
		g.top = j
	}
	off := (j % g.held) * g.m

	return g.data[off : off+g.m : off+g.m], nil
}

// At reads y(x_i, τ_j).
func (g *ValueGrid) At(i, j int) (float64, error) {
	idx, err := g.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set writes y(x_i, τ_j).
func (g *ValueGrid) Set(i, j int, v float64) error {
	idx, err := g.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	if j > g.top {
		g.top = j
	}
	g.data[idx] = v

	return nil
}

// indexOf validates (i, j) and maps it to the flat offset.
func (g *ValueGrid) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= g.m || j < 0 || j >= g.n {
		return 0, fmt.Errorf("ValueGrid.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}
	if g.mode == RollingColumns && j < g.top-1 {
		return 0, fmt.Errorf("ValueGrid.%s(%d,%d): %w", method, i, j, ErrColumnEvicted)
	}

	return (j%g.held)*g.m + i, nil
}

// String renders the held columns, one space row per line. Debug only.
func (g *ValueGrid) String() string {
	var sb strings.Builder
	first := 0
	if g.mode == RollingColumns && g.top > 0 {
		first = g.top - 1
	}
	for i := 0; i < g.m; i++ {
		sb.WriteByte('[')
		for j := first; j <= g.top; j++ {
			if j > first {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.data[(j%g.held)*g.m+i])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
