package codegen

import (
	"html"
	"strings"

	"github.com/alexisbeaulieu97/bentogrid/internal/style"
)

// writer renders the attribute and text syntax of one dialect.
type writer interface {
	class(value string) string
	style(decls []style.Declaration) string
	text(value string) string
}

func newWriter(f Format) writer {
	if f == FormatJSX {
		return jsxWriter{}
	}
	return htmlWriter{}
}

type htmlWriter struct{}

func (htmlWriter) class(value string) string {
	return `class="` + value + `"`
}

func (htmlWriter) style(decls []style.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return `style="` + strings.Join(parts, "; ") + `"`
}

func (htmlWriter) text(value string) string {
	return html.EscapeString(value)
}

type jsxWriter struct{}

var jsxTextEscaper = strings.NewReplacer("{", "&#123;", "}", "&#125;")

func (jsxWriter) class(value string) string {
	return `className="` + value + `"`
}

func (jsxWriter) style(decls []style.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = camelCase(d.Property) + ": '" + d.Value + "'"
	}
	return "style={{ " + strings.Join(parts, ", ") + " }}"
}

func (jsxWriter) text(value string) string {
	return jsxTextEscaper.Replace(html.EscapeString(value))
}

// camelCase turns a CSS property name into its React style key.
func camelCase(property string) string {
	parts := strings.Split(property, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
