// Package layout places resolved cells on grid tracks the way a browser's
// sparse, row-major auto-placement does, so previews match the generated
// markup.
package layout

import (
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
)

// Placement is the track area one cell occupies. Rows and columns are zero based.
type Placement struct {
	Index   int
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Result is the outcome of placing every cell of a grid.
type Result struct {
	Columns    int
	Rows       int // explicit rows from the settings
	Tracks     int // rows actually used, including implicit ones
	Placements []Placement
}

// Box is a rectangle in an arbitrary unit.
type Box struct {
	X, Y, W, H float64
}

// Place auto-places cells 0 through ItemCount-1 in index order.
func Place(s grid.Settings) Result {
	s = s.Normalized()
	res := Result{
		Columns: s.Columns,
		Rows:    s.Rows,
		Tracks:  s.Rows,
	}

	occ := &occupancy{columns: s.Columns}
	row, col := 0, 0
	for _, eff := range grid.ResolveAll(s) {
		rs, cs := eff.RowSpan, eff.ColSpan
		r, c := occ.find(row, col, rs, cs)
		occ.mark(r, c, rs, cs)
		res.Placements = append(res.Placements, Placement{
			Index:   eff.Index,
			Row:     r,
			Col:     c,
			RowSpan: rs,
			ColSpan: cs,
		})
		row, col = r, c+cs
		res.Tracks = max(res.Tracks, r+rs)
	}

	return res
}

// Overflow reports whether cells spilled into implicit rows.
func (r Result) Overflow() bool {
	return r.Tracks > r.Rows
}

// At returns the placement covering the given track cell.
func (r Result) At(row, col int) (Placement, bool) {
	for _, p := range r.Placements {
		if row >= p.Row && row < p.Row+p.RowSpan && col >= p.Col && col < p.Col+p.ColSpan {
			return p, true
		}
	}
	return Placement{}, false
}

// Bounds converts a placement into a box given the size of one track and the
// gap between tracks.
func (p Placement) Bounds(track, gap float64) Box {
	return Box{
		X: float64(p.Col) * (track + gap),
		Y: float64(p.Row) * (track + gap),
		W: float64(p.ColSpan)*track + float64(p.ColSpan-1)*gap,
		H: float64(p.RowSpan)*track + float64(p.RowSpan-1)*gap,
	}
}

// Size returns the width and height of the whole result for the given track and gap.
func (r Result) Size(track, gap float64) (w, h float64) {
	w = float64(r.Columns)*track + float64(max(r.Columns-1, 0))*gap
	h = float64(r.Tracks)*track + float64(max(r.Tracks-1, 0))*gap
	return w, h
}

type occupancy struct {
	columns int
	cells   [][]bool
}

func (o *occupancy) free(row, col int) bool {
	if row >= len(o.cells) {
		return true
	}
	return !o.cells[row][col]
}

func (o *occupancy) fits(row, col, rs, cs int) bool {
	if col+cs > o.columns {
		return false
	}
	for r := row; r < row+rs; r++ {
		for c := col; c < col+cs; c++ {
			if !o.free(r, c) {
				return false
			}
		}
	}
	return true
}

// find scans forward from the cursor for the first area that fits. Rows grow
// without bound, so a cell whose span fits the column count always lands.
func (o *occupancy) find(row, col, rs, cs int) (int, int) {
	for r := row; ; r++ {
		start := 0
		if r == row {
			start = col
		}
		for c := start; c+cs <= o.columns; c++ {
			if o.fits(r, c, rs, cs) {
				return r, c
			}
		}
	}
}

func (o *occupancy) mark(row, col, rs, cs int) {
	for len(o.cells) < row+rs {
		o.cells = append(o.cells, make([]bool, o.columns))
	}
	for r := row; r < row+rs; r++ {
		for c := col; c < col+cs; c++ {
			o.cells[r][c] = true
		}
	}
}
