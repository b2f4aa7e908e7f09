// Package tui implements the interactive grid editor.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

// Mode selects which keys the editor is listening for.
type Mode int

const (
	ModeEdit Mode = iota
	ModeText
	ModeCellColor
	ModeGridColor
	ModeExpression
	ModeHelp
)

// gapSteps are the values g and G step through.
var gapSteps = []int{0, 2, 4, 6}

// Options configure a new editor.
type Options struct {
	// ExportPath is where w writes the markup. Empty disables export.
	ExportPath string
	Format     codegen.Format
	Logger     *logger.Logger
}

// Model is the Bubble Tea state of the editor. The grid settings are replaced
// wholesale by every edit; nothing else holds a reference to them.
type Model struct {
	settings grid.Settings
	cursor   int
	mode     Mode

	input textinput.Model

	showCode   bool
	format     codegen.Format
	exportPath string

	status    string
	statusErr bool

	width  int
	height int

	quitting bool
	log      *logger.Logger
}

// ExportedMsg reports the outcome of writing markup to disk.
type ExportedMsg struct {
	Path  string
	Bytes int
	Err   error
}

// NewModel constructs an editor starting from s.
func NewModel(s grid.Settings, opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	format := opts.Format
	if format == "" {
		format = codegen.FormatHTML
	}

	return Model{
		settings:   s.Normalized(),
		input:      ti,
		format:     format,
		exportPath: opts.ExportPath,
		log:        opts.Logger.Component("editor"),
	}
}

// Init starts the Bubble Tea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Settings returns the current grid settings.
func (m Model) Settings() grid.Settings {
	return m.settings
}

// Cursor returns the index of the selected cell.
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the last status message and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Markup generates the code for the current settings.
func (m Model) Markup() string {
	return codegen.GenerateWith(m.settings, codegen.Options{Format: m.format})
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error, input string) {
	m.status = err.Error()
	m.statusErr = true
	m.log.Rejected(err, input)
}

func (m *Model) clampCursor() {
	m.cursor = min(max(m.cursor, 0), m.settings.ItemCount-1)
}
