package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bentogrid/internal/codegen"
	"github.com/alexisbeaulieu97/bentogrid/internal/expr"
	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	"github.com/alexisbeaulieu97/bentogrid/internal/logger"
)

// Update handles Bubble Tea messages and returns the next model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ExportedMsg:
		if msg.Err != nil {
			m.setError(msg.Err, msg.Path)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("exported %d bytes to %s", msg.Bytes, msg.Path))
		m.log.Info("markup exported", logger.Fields{"path": msg.Path, "bytes": msg.Bytes})
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case ModeText, ModeCellColor, ModeGridColor, ModeExpression:
		return m.handleInputKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleEditKeys(msg)
	}
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.settings
	eff := grid.Resolve(s, m.cursor)

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "left":
		m.cursor--
	case "right":
		m.cursor++
	case "up":
		m.cursor -= s.Columns
	case "down":
		m.cursor += s.Columns

	case "c":
		m.applyField(grid.FieldColumns, s.Columns+1)
	case "C":
		m.applyField(grid.FieldColumns, s.Columns-1)
	case "r":
		m.applyField(grid.FieldRows, s.Rows+1)
	case "R":
		m.applyField(grid.FieldRows, s.Rows-1)
	case "g":
		m.applyField(grid.FieldGap, grid.Next(gapSteps, s.Gap))
	case "G":
		m.applyField(grid.FieldGap, prevStep(gapSteps, s.Gap))
	case "n":
		m.applyField(grid.FieldItemCount, s.ItemCount+1)
	case "N":
		m.applyField(grid.FieldItemCount, s.ItemCount-1)
	case "o":
		m.applyField(grid.FieldCornerType, grid.Next(grid.CornerTypes, s.CornerType))
	case "a":
		m.applyField(grid.FieldAspectRatio, grid.Next(grid.AspectRatios, s.AspectRatio))
	case "b":
		m.applyField(grid.FieldBorderStyle, grid.Next(grid.BorderStyles, s.BorderStyle))
	case "B":
		m.applyField(grid.FieldBorderColor, grid.Next(grid.BorderColors, s.BorderColor))
	case "i":
		m.applyField(grid.FieldUseImages, !s.UseImages)

	case "h":
		m.applyItem(grid.ItemUpdate{ColSpan: grid.Ptr(eff.ColSpan + 1)})
	case "H":
		m.applyItem(grid.ItemUpdate{ColSpan: grid.Ptr(eff.ColSpan - 1)})
	case "v":
		m.applyItem(grid.ItemUpdate{RowSpan: grid.Ptr(eff.RowSpan + 1)})
	case "V":
		m.applyItem(grid.ItemUpdate{RowSpan: grid.Ptr(eff.RowSpan - 1)})
	case "x":
		m.applyItem(grid.ResetItem(s))
		m.setStatus(fmt.Sprintf("reset %s", grid.ItemID(m.cursor)))

	case "t":
		return m.startInput(ModeText, "text> ", eff.Text)
	case "k":
		return m.startInput(ModeCellColor, "cell background> ", eff.BackgroundColor)
	case "K":
		return m.startInput(ModeGridColor, "grid background> ", s.BackgroundColor)
	case ":":
		return m.startInput(ModeExpression, ": ", "")

	case "tab":
		m.showCode = !m.showCode
	case "f":
		m.format = grid.Next(codegen.Formats, m.format)
		m.setStatus(fmt.Sprintf("format %s", m.format))
	case "w":
		if m.exportPath == "" {
			m.setError(errors.New("no export path; start the editor with --output"), "w")
			return m, nil
		}
		return m, exportCmd(m.exportPath, m.Markup())
	case "ctrl+r":
		m.settings = grid.Reset()
		m.cursor = 0
		m.setStatus("settings reset")
		m.log.Debug("settings reset")
	case "?":
		m.mode = ModeHelp
	}

	m.clampCursor()
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeEdit
		m.input.Blur()
		m.setStatus("cancelled")
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		mode := m.mode
		m.mode = ModeEdit
		m.input.Blur()
		m.submit(mode, value)
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.mode = ModeEdit
	}
	return m, nil
}

func (m Model) startInput(mode Mode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) submit(mode Mode, value string) {
	switch mode {
	case ModeText:
		m.applyItemField(grid.ItemText, value)
	case ModeCellColor:
		m.applyItemField(grid.ItemBackgroundColor, strings.TrimSpace(value))
	case ModeGridColor:
		m.applyField(grid.FieldBackgroundColor, strings.TrimSpace(value))
	case ModeExpression:
		next, errs := expr.Apply(m.settings, value)
		m.settings = next
		if len(errs) > 0 {
			m.setError(errors.Join(errs...), value)
			return
		}
		m.setStatus("applied " + strings.TrimSpace(value))
		m.log.Debug("expression applied", logger.Fields{"expr": value})
	}
}

func (m *Model) applyField(field grid.Field, value any) {
	next, err := grid.UpdateField(m.settings, field, value)
	if err != nil {
		m.setError(err, fmt.Sprint(value))
		return
	}
	m.settings = next
	m.status = ""
	m.log.Debug("field updated", logger.Fields{"field": string(field), "value": value})
}

func (m *Model) applyItem(u grid.ItemUpdate) {
	m.settings = grid.UpdateItem(m.settings, m.cursor, u)
	m.status = ""
	m.log.Debug("item updated", logger.Fields{"item": grid.ItemID(m.cursor)})
}

func (m *Model) applyItemField(field grid.ItemField, value string) {
	u, err := grid.NewItemUpdate(field, value)
	if err != nil {
		m.setError(err, value)
		return
	}
	m.applyItem(u)
}

func exportCmd(path, markup string) tea.Cmd {
	return func() tea.Msg {
		data := []byte(markup + "\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return ExportedMsg{Path: path, Err: fmt.Errorf("export markup: %w", err)}
		}
		return ExportedMsg{Path: path, Bytes: len(data)}
	}
}

// prevStep returns the step before current, wrapping around. Values between
// steps snap to the closest lower step.
func prevStep(steps []int, current int) int {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < current {
			return steps[i]
		}
	}
	return steps[len(steps)-1]
}
