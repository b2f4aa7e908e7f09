package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
)

func TestRenderPreviewDefaultGrid(t *testing.T) {
	t.Parallel()

	out := renderPreview(grid.Default(), 0, 76)
	lines := strings.Split(out, "\n")

	// Two rows of five-line tracks plus one gap line.
	require.Len(t, lines, 2*cellHeight+1)
	assert.True(t, strings.HasPrefix(lines[0], "┏"), "selected cell uses a heavy outline")
	assert.Contains(t, lines[0], "╭", "medium corners are drawn rounded")
	for i := 1; i <= 6; i++ {
		assert.Contains(t, out, "#"+string(rune('0'+i)))
	}
}

func TestRenderPreviewSpans(t *testing.T) {
	t.Parallel()

	s := grid.UpdateItem(grid.Default(), 0, grid.ItemUpdate{ColSpan: grid.Ptr(2), RowSpan: grid.Ptr(2)})
	out := renderPreview(s, 5, 76)

	assert.Contains(t, out, "2×2")
	assert.Contains(t, out, "#6")
}

func TestRenderPreviewSquareCorners(t *testing.T) {
	t.Parallel()

	s, err := grid.UpdateField(grid.Default(), grid.FieldCornerType, grid.CornerNone)
	require.NoError(t, err)

	out := renderPreview(s, 0, 76)
	assert.NotContains(t, out, "╭")
	assert.Contains(t, out, "┌")
}

func TestRenderPreviewWideText(t *testing.T) {
	t.Parallel()

	s := grid.UpdateItem(grid.Default(), 1, grid.ItemUpdate{
		RowSpan: grid.Ptr(2),
		Text:    grid.Ptr("日本語のとても長いテキストです"),
	})
	out := renderPreview(s, 0, 40)
	lines := strings.Split(out, "\n")

	width := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), width)
	}
	assert.Contains(t, out, "…")
}

func TestRenderPreviewTransform(t *testing.T) {
	t.Parallel()

	s := grid.UpdateItem(grid.Default(), 0, grid.ItemUpdate{
		Text:      grid.Ptr("hero"),
		TextStyle: grid.TextStyleOverride{Transform: grid.Ptr(grid.TransformUppercase)},
	})
	assert.Contains(t, renderPreview(s, 0, 76), "HERO")
}

func TestRenderPreviewSingleRowCellShowsAllLines(t *testing.T) {
	t.Parallel()

	s := grid.UpdateItem(grid.Default(), 2, grid.ItemUpdate{
		ColSpan: grid.Ptr(2),
		Text:    grid.Ptr("Pricing"),
	})
	out := renderPreview(s, 0, 76)

	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Pricing")
	assert.Contains(t, out, "2×1")
}

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    grid.TextTransform
		in   string
		want string
	}{
		{"none", grid.TransformNone, "hello World", "hello World"},
		{"uppercase", grid.TransformUppercase, "hello world", "HELLO WORLD"},
		{"lowercase", grid.TransformLowercase, "Hello WORLD", "hello world"},
		{"capitalize", grid.TransformCapitalize, "hello big world", "Hello Big World"},
		{"capitalize keeps inner case", grid.TransformCapitalize, "iPhone sALE", "IPhone SALE"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, transform(tt.in, tt.t))
		})
	}
}

func TestGeometryFor(t *testing.T) {
	t.Parallel()

	g := geometryFor(grid.Default(), 76)
	assert.Equal(t, maxCellWidth, g.cellW)
	assert.Equal(t, 2, g.gapX)
	assert.Equal(t, 1, g.gapY)

	s, err := grid.UpdateField(grid.Default(), grid.FieldColumns, 12)
	require.NoError(t, err)
	assert.Equal(t, minCellWidth, geometryFor(s, 40).cellW)
}

func TestTextCanvasSkipsWideTail(t *testing.T) {
	t.Parallel()

	c := newTextCanvas(6, 1)
	c.text(0, 0, 6, "日本")
	assert.Equal(t, " 日本", c.String())
}
