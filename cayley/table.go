// SPDX-License-Identifier: MIT
// Package cayley: Table, a dense row-major grid of alphas.

package cayley

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arcalc/algebra"
)

// Size is the number of rows and of columns of every Table.
const Size = algebra.BasisSize

// Table is op(row, col) for every pair of allowed labels.
// cells holds Size*Size entries in row-major order.
type Table struct {
	labels []string
	alphas []algebra.Alpha // row headers
	index  map[string]int
	cells  []algebra.Alpha
}

// Build computes the table of op over cfg's current allowed ordering.
// Stage 1 (Validate): op must be non-nil; the allowed labels are snapshotted.
// Stage 2 (Execute): one errgroup task per row, bounded by WithWorkers.
// Stage 3 (Finalize): the first operator error cancels the remaining rows.
// Complexity: O(Size²) operator calls.
func Build(ctx context.Context, cfg *algebra.Config, op Operator, opts ...Option) (*Table, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	o := gatherOptions(opts)

	labels := cfg.Allowed()
	alphas := make([]algebra.Alpha, Size)
	for i, l := range labels {
		a, err := cfg.Alpha(l)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		alphas[i] = a
	}

	t := &Table{
		labels: labels,
		alphas: alphas,
		index:  make(map[string]int, Size),
		cells:  make([]algebra.Alpha, Size*Size),
	}
	for i, l := range labels {
		t.index[l] = i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for r := 0; r < Size; r++ {
		r := r
		g.Go(func() error {
			for c := 0; c < Size; c++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				cell, err := op(cfg, alphas[r], alphas[c])
				if err != nil {
					return fmt.Errorf("Build: %s × %s: %w", alphas[r], alphas[c], err)
				}
				t.cells[r*Size+c] = cell
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// Labels returns the row (and column) labels in order.
func (t *Table) Labels() []string { return append([]string(nil), t.labels...) }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (t *Table) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, tableErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*Size + col, nil
}

// At returns the cell at (row, col). Complexity: O(1).
func (t *Table) At(row, col int) (algebra.Alpha, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return algebra.Alpha{}, err
	}

	return t.cells[idx], nil
}

// Sign returns the sign of the cell at (row, col). Complexity: O(1).
func (t *Table) Sign(row, col int) (algebra.Sign, error) {
	idx, err := t.indexOf("Sign", row, col)
	if err != nil {
		return 0, err
	}

	return t.cells[idx].Sign(), nil
}

// Lookup returns the cell for the row labelled a and the column labelled b.
func (t *Table) Lookup(a, b string) (algebra.Alpha, error) {
	r, ok := t.index[a]
	if !ok {
		return algebra.Alpha{}, fmt.Errorf("Table.Lookup(%q): %w", a, ErrUnknownLabel)
	}
	c, ok := t.index[b]
	if !ok {
		return algebra.Alpha{}, fmt.Errorf("Table.Lookup(%q): %w", b, ErrUnknownLabel)
	}

	return t.cells[r*Size+c], nil
}

// NegativeCount returns the number of negative cells.
func (t *Table) NegativeCount() int {
	n := 0
	for _, c := range t.cells {
		if c.Sign() == algebra.Negative {
			n++
		}
	}

	return n
}

// String renders the values right-aligned in columns of width 6.
func (t *Table) String() string {
	return t.values(func(_ algebra.Alpha, s string) string { return s })
}

// SignString renders ■ for every negative cell and □ otherwise, framed
// into the four zets.
func (t *Table) SignString() string {
	return t.signs(identity)
}

// SignDistribution renders the five 4×4 sign blocks
//
//	∂e : first element of each zet acting on the first elements
//	∂Ξ : first elements acting on the second elements
//	∇  : second elements acting on the first elements
//	∇• : second elements acting on the second elements
//	∇x : fourth elements acting on the second elements
//
// side by side, one line per block row.
func (t *Table) SignDistribution() string {
	firsts, seconds, fourths := zetColumn(0), zetColumn(1), zetColumn(3)
	blocks := []struct {
		name       string
		rows, cols []int
	}{
		{"∂e", firsts, firsts},
		{"∂Ξ", firsts, seconds},
		{"∇", seconds, firsts},
		{"∇•", seconds, seconds},
		{"∇x", fourths, seconds},
	}

	lines := make([]string, 4)
	for i := range lines {
		var parts []string
		for _, b := range blocks {
			name := "   "
			if i == 0 {
				name = fmt.Sprintf("%3s", b.name)
			}
			syms := make([]string, 4)
			for j, c := range b.cols {
				syms[j] = symbol(t.cells[b.rows[i]*Size+c])
			}
			parts = append(parts, name+" |"+strings.Join(syms, " ")+"|")
		}
		lines[i] = strings.Join(parts, " ")
	}

	return strings.Join(lines, "\n")
}

// zetColumn returns the table positions of the k-th element of each zet.
func zetColumn(k int) []int {
	return []int{k, 4 + k, 8 + k, 12 + k}
}

const (
	negativeCell = "■"
	positiveCell = "□"
)

func symbol(a algebra.Alpha) string {
	if a.Sign() == algebra.Negative {
		return negativeCell
	}

	return positiveCell
}

func identity(_ cellKind, s string) string { return s }

type cellKind int

const (
	cellPositive cellKind = iota
	cellNegative
	cellLabel
	cellFrame
)

// signs lays out the sign grid, passing every fragment through style.
func (t *Table) signs(style func(cellKind, string) string) string {
	divider := style(cellFrame, "      "+strings.Repeat("+---------", 4)+"+")
	head := make([]string, len(algebra.Zets))
	for i, z := range algebra.Zets {
		head[i] = z.String()
	}

	lines := []string{
		style(cellLabel, "           "+strings.Join(head, "         ")),
		divider,
	}
	for r := 0; r < Size; r++ {
		row := style(cellLabel, fmt.Sprintf("%-5s", t.alphas[r])) + style(cellFrame, " | ")
		for block := 0; block < 4; block++ {
			if block > 0 {
				row += style(cellFrame, " | ")
			}
			syms := make([]string, 4)
			for j := range syms {
				cell := t.cells[r*Size+block*4+j]
				kind := cellPositive
				if cell.Sign() == algebra.Negative {
					kind = cellNegative
				}
				syms[j] = style(kind, symbol(cell))
			}
			row += strings.Join(syms, " ")
		}
		lines = append(lines, row+style(cellFrame, " |"))
		if (r+1)%4 == 0 {
			lines = append(lines, divider)
		}
	}

	return strings.Join(lines, "\n")
}

// values lays out the value grid, passing every cell through style.
func (t *Table) values(style func(algebra.Alpha, string) string) string {
	lines := make([]string, Size)
	for r := 0; r < Size; r++ {
		cells := make([]string, Size)
		for c := 0; c < Size; c++ {
			a := t.cells[r*Size+c]
			cells[c] = style(a, fmt.Sprintf("%6s", a.String()))
		}
		lines[r] = strings.Join(cells, " ")
	}

	return strings.Join(lines, "\n")
}
