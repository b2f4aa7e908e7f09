// Package render draws a grid's placements as vector graphics.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/layout"
	"github.com/alexisbeaulieu97/bentogrid/internal/style"
)

// mmPerPx converts CSS pixels to millimetres.
const mmPerPx = 25.4 / 96

// Format selects the output document type.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// Options control the drawing. Sizes are in millimetres.
type Options struct {
	Format Format
	// Track is the side of one grid track.
	Track float64
	// GapScale multiplies the grid gap, given in quarter rem, to millimetres.
	GapScale float64
	// Padding surrounds the grid inside the document.
	Padding float64
	// Background fills the document behind the grid. Empty leaves it transparent.
	Background string
}

// DefaultOptions returns the options used by the preview command.
func DefaultOptions() Options {
	return Options{
		Format:     FormatSVG,
		Track:      30,
		GapScale:   1,
		Padding:    4,
		Background: "#111827",
	}
}

// ParseFormat maps a name or file extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(name), ".")); f {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported preview format %q", name)
	}
}

// Write draws s to w in the format named by opts.
func Write(w io.Writer, s grid.Settings, opts Options) error {
	switch opts.Format {
	case "", FormatSVG:
		return SVG(w, s, opts)
	case FormatPDF:
		return PDF(w, s, opts)
	default:
		return fmt.Errorf("unsupported preview format %q", opts.Format)
	}
}

// SVG draws s as an SVG document.
func SVG(w io.Writer, s grid.Settings, opts Options) error {
	c, err := draw(s, opts)
	if err != nil {
		return err
	}
	writer := svg.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// PDF draws s as a single page PDF document.
func PDF(w io.Writer, s grid.Settings, opts Options) error {
	c, err := draw(s, opts)
	if err != nil {
		return err
	}
	writer := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func draw(s grid.Settings, opts Options) (*canvas.Canvas, error) {
	if opts.Track <= 0 {
		return nil, fmt.Errorf("track size must be positive, got %v", opts.Track)
	}
	if opts.GapScale < 0 || opts.Padding < 0 {
		return nil, fmt.Errorf("gap scale and padding must not be negative")
	}

	s = s.Normalized()
	res := layout.Place(s)
	gap := float64(s.Gap) * opts.GapScale
	gridW, gridH := res.Size(opts.Track, gap)

	c := canvas.New(gridW+2*opts.Padding, gridH+2*opts.Padding)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	if opts.Background != "" {
		if !grid.IsHexColor(opts.Background) {
			return nil, fmt.Errorf("invalid background color %q", opts.Background)
		}
		ctx.SetFillColor(canvas.Hex(opts.Background))
		ctx.SetStrokeColor(color.RGBA{})
		ctx.DrawPath(0, 0, canvas.Rectangle(c.W, c.H))
	}

	for _, p := range res.Placements {
		eff := grid.Resolve(s, p.Index)
		box := p.Bounds(opts.Track, gap)
		drawCell(ctx, eff, box, opts.Padding)
	}

	return c, nil
}

func drawCell(ctx *canvas.Context, eff grid.Effective, box layout.Box, offset float64) {
	ctx.SetFillColor(canvas.Hex(eff.BackgroundColor))

	if style.BorderActive(eff.BorderStyle) {
		ctx.SetStrokeColor(canvas.Hex(style.BorderHex(eff.BorderColor)))
		ctx.SetStrokeWidth(float64(style.BorderWidth(eff.BorderStyle)) * mmPerPx)
	} else {
		ctx.SetStrokeColor(color.RGBA{})
		ctx.SetStrokeWidth(0)
	}

	radius := cornerRadius(eff, box)
	var path *canvas.Path
	if radius > 0 {
		path = canvas.RoundedRectangle(box.W, box.H, radius)
	} else {
		path = canvas.Rectangle(box.W, box.H)
	}
	ctx.DrawPath(box.X+offset, box.Y+offset, path)
}

// cornerRadius converts the cell's corner to millimetres, capped so a full
// rounding produces a pill rather than an invalid path.
func cornerRadius(eff grid.Effective, box layout.Box) float64 {
	px := style.CornerRadius(eff.CornerType, eff.CornerCustom)
	if px <= 0 {
		return 0
	}
	return math.Min(float64(px)*mmPerPx, math.Min(box.W, box.H)/2)
}
