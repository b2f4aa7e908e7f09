// Package codegen turns grid settings into markup a user can paste into a
// project. Output depends on the settings alone: the same settings always
// produce byte-identical text.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/style"
)

// Format selects the markup dialect.
type Format string

const (
	FormatHTML Format = "html"
	FormatJSX  Format = "jsx"
)

// Formats lists the supported dialects.
var Formats = []Format{FormatHTML, FormatJSX}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatHTML, FormatJSX:
		return f, nil
	case "":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected html or jsx)", name)
}

// Options tunes generation.
type Options struct {
	Format Format
}

const (
	containerClass = "min-h-[400px] p-4"
	imageClass     = "w-full h-full object-cover"
	indent         = "  "
)

// Generate renders settings as HTML.
func Generate(s grid.Settings) string {
	return GenerateWith(s, Options{Format: FormatHTML})
}

// GenerateWith renders settings in the dialect chosen by opts.
func GenerateWith(s grid.Settings, opts Options) string {
	s = s.Normalized()
	w := newWriter(opts.Format)

	var b strings.Builder
	b.WriteString("<div ")
	b.WriteString(w.style(containerDeclarations(s)))
	b.WriteString(" ")
	b.WriteString(w.class(containerClass))
	b.WriteString(">\n")

	for _, eff := range grid.ResolveAll(s) {
		b.WriteString(indent)
		b.WriteString(cell(w, s, eff))
		b.WriteString("\n")
	}

	b.WriteString("</div>")
	return b.String()
}

// GapRem converts a gap in quarter-rem steps to rem.
func GapRem(gap int) string {
	return strconv.FormatFloat(float64(max(gap, 0))*grid.GapUnitRem, 'f', -1, 64) + "rem"
}

// TrackTemplate formats an explicit track list of n equal tracks.
func TrackTemplate(n int) string {
	return "repeat(" + strconv.Itoa(n) + ", minmax(0,1fr))"
}

func containerDeclarations(s grid.Settings) []style.Declaration {
	return []style.Declaration{
		{Property: "display", Value: "grid"},
		{Property: "grid-template-columns", Value: TrackTemplate(s.Columns)},
		{Property: "grid-template-rows", Value: TrackTemplate(s.Rows)},
		{Property: "gap", Value: GapRem(s.Gap)},
	}
}

func cell(w writer, s grid.Settings, eff grid.Effective) string {
	var b strings.Builder
	b.WriteString("<div ")
	b.WriteString(w.class(strings.Join(style.Classes(eff), " ")))
	b.WriteString(" ")
	b.WriteString(w.style(style.Declarations(eff)))
	b.WriteString(">")
	b.WriteString(content(w, s, eff))
	b.WriteString("</div>")
	return b.String()
}

func content(w writer, s grid.Settings, eff grid.Effective) string {
	switch {
	case s.UseImages:
		classes := imageClass
		if corner := style.Corner(eff.CornerType, eff.CornerCustom); corner != "" {
			classes += " " + corner
		}
		return fmt.Sprintf(`<img src="%s" alt="%s" %s loading="lazy" />`,
			PlaceholderURL(eff.Index), eff.Label(), w.class(classes))
	case eff.HasText():
		color := []style.Declaration{{Property: "color", Value: eff.TextColor}}
		return "<span " + w.style(color) + ">" + w.text(eff.Text) + "</span>"
	default:
		return eff.Label()
	}
}

// PlaceholderURL is the stock image shown in a cell when images are on.
func PlaceholderURL(index int) string {
	return "https://source.unsplash.com/random/800x600?sig=" + strconv.Itoa(index)
}
