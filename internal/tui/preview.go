package tui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/layout"
)

const (
	minCellWidth = 6
	maxCellWidth = 18
	// cellHeight leaves room for the label, text and span lines.
	cellHeight   = 5
	// wideTail marks the second column of a double-width rune.
	wideTail rune = -1
)

type boxRunes struct {
	tl, tr, bl, br, h, v rune
}

var (
	squareBox   = boxRunes{'┌', '┐', '└', '┘', '─', '│'}
	roundedBox  = boxRunes{'╭', '╮', '╰', '╯', '─', '│'}
	selectedBox = boxRunes{'┏', '┓', '┗', '┛', '━', '┃'}
)

// textCanvas is a fixed-size grid of terminal columns.
type textCanvas struct {
	cells  [][]rune
	width  int
	height int
}

func newTextCanvas(width, height int) *textCanvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", width))
	}
	return &textCanvas{cells: cells, width: width, height: height}
}

func (c *textCanvas) set(x, y int, r rune) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x] = r
	}
}

func (c *textCanvas) box(x, y, w, h int, b boxRunes) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		c.set(i, y, b.h)
		c.set(i, y+h-1, b.h)
	}
	for j := y + 1; j < y+h-1; j++ {
		c.set(x, j, b.v)
		c.set(x+w-1, j, b.v)
	}
	c.set(x, y, b.tl)
	c.set(x+w-1, y, b.tr)
	c.set(x, y+h-1, b.bl)
	c.set(x+w-1, y+h-1, b.br)
}

// text writes s centered between x and x+width, truncating by display width.
func (c *textCanvas) text(x, y, width int, s string) {
	if width <= 0 || s == "" {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	x += (width - runewidth.StringWidth(s)) / 2
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r)
		if w == 2 {
			c.set(x+1, y, wideTail)
		}
		x += w
	}
}

func (c *textCanvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		var sb strings.Builder
		for _, r := range row {
			if r != wideTail {
				sb.WriteRune(r)
			}
		}
		lines[i] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// previewGeometry sizes one track in terminal cells for the available width.
type previewGeometry struct {
	cellW, cellH int
	gapX, gapY   int
}

func geometryFor(s grid.Settings, width int) previewGeometry {
	g := previewGeometry{
		cellH: cellHeight,
		gapX:  min(s.Gap/2, 2),
		gapY:  min(s.Gap/4, 1),
	}
	avail := width - (s.Columns-1)*g.gapX
	g.cellW = min(max(avail/max(s.Columns, 1), minCellWidth), maxCellWidth)
	return g
}

// renderPreview draws every placed cell as a box. The selected cell uses a
// heavy outline; rounded corners follow the cell's corner setting.
func renderPreview(s grid.Settings, cursor, width int) string {
	s = s.Normalized()
	res := layout.Place(s)
	g := geometryFor(s, width)

	w, _ := res.Size(float64(g.cellW), float64(g.gapX))
	_, h := res.Size(float64(g.cellH), float64(g.gapY))
	c := newTextCanvas(int(w), int(h))

	for _, p := range res.Placements {
		eff := grid.Resolve(s, p.Index)
		bx := p.Bounds(float64(g.cellW), float64(g.gapX))
		by := p.Bounds(float64(g.cellH), float64(g.gapY))
		x, y, bw, bh := int(bx.X), int(by.Y), int(bx.W), int(by.H)

		c.box(x, y, bw, bh, boxFor(eff, p.Index == cursor))

		inner := bw - 2
		lines := cellLines(s, eff)
		top := y + 1 + max((bh-2-len(lines))/2, 0)
		for i, line := range lines {
			if top+i >= y+bh-1 {
				break
			}
			c.text(x+1, top+i, inner, line)
		}
	}

	return c.String()
}

func boxFor(eff grid.Effective, selected bool) boxRunes {
	switch {
	case selected:
		return selectedBox
	case eff.CornerType == grid.CornerNone,
		eff.CornerType == grid.CornerCustom && eff.CornerCustom == 0:
		return squareBox
	default:
		return roundedBox
	}
}

func cellLines(s grid.Settings, eff grid.Effective) []string {
	lines := []string{"#" + strconv.Itoa(eff.Index+1)}
	switch {
	case s.UseImages:
		lines = append(lines, "[img]")
	case eff.HasText():
		lines = append(lines, transform(eff.Text, eff.TextStyle.Transform))
	}
	if eff.RowSpan > 1 || eff.ColSpan > 1 {
		lines = append(lines, strconv.Itoa(eff.ColSpan)+"×"+strconv.Itoa(eff.RowSpan))
	}
	return lines
}

func transform(text string, t grid.TextTransform) string {
	switch t {
	case grid.TransformUppercase:
		return strings.ToUpper(text)
	case grid.TransformLowercase:
		return strings.ToLower(text)
	case grid.TransformCapitalize:
		// NoLower keeps the rest of each word as typed, like CSS capitalize.
		return cases.Title(language.Und, cases.NoLower).String(text)
	default:
		return text
	}
}
