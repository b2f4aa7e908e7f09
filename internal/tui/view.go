package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/layout"
)

const (
	defaultWidth  = 80
	defaultHeight = 40
	// chrome is the number of lines the header, status and footer take.
	chrome = 8
)

type keyHelp struct {
	key  string
	desc string
}

var editKeys = []keyHelp{
	{"←↑↓→", "select cell"},
	{"c/C", "columns ±"},
	{"r/R", "rows ±"},
	{"g/G", "gap step"},
	{"n/N", "item count ±"},
	{"o", "cycle corners"},
	{"a", "cycle aspect ratio"},
	{"b/B", "cycle border / border color"},
	{"i", "toggle images"},
	{"h/H", "cell column span ±"},
	{"v/V", "cell row span ±"},
	{"x", "reset cell"},
	{"t", "edit cell text"},
	{"k/K", "cell / grid background"},
	{":", "apply expression"},
	{"tab", "toggle code"},
	{"f", "switch html/jsx"},
	{"w", "export markup"},
	{"ctrl+r", "reset everything"},
	{"?", "help"},
	{"q", "quit"},
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	width, height := m.size()
	preview := previewStyle.Render(renderPreview(m.settings, m.cursor, width-4))
	sections := []string{
		m.renderHeader(),
		preview,
		m.renderCell(),
	}

	if m.isInputMode() {
		sections = append(sections, m.input.View())
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	if m.showCode {
		sections = append(sections,
			sectionStyle.Render(fmt.Sprintf("Code (%s)", m.format)),
			codeStyle.Render(clipLines(m.Markup(), max(height-chrome-lipgloss.Height(preview), 4))),
		)
	}

	sections = append(sections, mutedStyle.Render("? help • tab code • w export • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	s := m.settings
	summary := fmt.Sprintf("%d×%d • gap %d • %d items • corner %s • aspect %s • border %s/%s",
		s.Columns, s.Rows, s.Gap, s.ItemCount, s.CornerType, s.AspectRatio, s.BorderStyle, s.BorderColor)
	if s.UseImages {
		summary += " • images"
	}
	if res := layout.Place(s); res.Overflow() {
		summary += fmt.Sprintf(" • %d implicit rows", res.Tracks-res.Rows)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Bento Grid"),
		mutedStyle.Render(summary),
	)
}

func (m Model) renderCell() string {
	eff := grid.Resolve(m.settings, m.cursor)
	line := fmt.Sprintf("%s • span %d×%d • bg %s • corner %s • aspect %s",
		eff.ID, eff.ColSpan, eff.RowSpan, eff.BackgroundColor, eff.CornerType, eff.AspectRatio)
	if eff.HasText() {
		line += fmt.Sprintf(" • text %q", eff.Text)
	}
	return sectionStyle.Render("Selected") + "\n" + line
}

func (m Model) renderHelp() string {
	var lines []string
	for _, k := range editKeys {
		lines = append(lines, fmt.Sprintf("%s  %s", helpKeyStyle.Render(fmt.Sprintf("%-7s", k.key)), helpDescStyle.Render(k.desc)))
	}
	lines = append(lines, "", mutedStyle.Render("press ? or esc to close"))
	return helpBoxStyle.Render(titleStyle.Render("Keys") + "\n\n" + strings.Join(lines, "\n"))
}

func (m Model) isInputMode() bool {
	switch m.mode {
	case ModeText, ModeCellColor, ModeGridColor, ModeExpression:
		return true
	default:
		return false
	}
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// clipLines keeps the first n lines of s and notes how many were dropped.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	kept := append(lines[:n:n], fmt.Sprintf("… %d more lines", len(lines)-n))
	return strings.Join(kept, "\n")
}
