package grid

import "strconv"

// Effective is the fully populated style of one cell.
type Effective struct {
	Index           int
	ID              string
	RowSpan         int
	ColSpan         int
	AspectRatio     AspectRatio
	CornerType      CornerType
	CornerCustom    int
	BorderStyle     BorderStyle
	BorderColor     BorderColor
	BackgroundColor string
	Text            string
	TextColor       string
	TextStyle       TextStyle
}

// HasText reports whether the cell shows user text instead of its label.
func (e Effective) HasText() bool {
	return e.Text != ""
}

// Label is the placeholder content of a cell without text.
func (e Effective) Label() string {
	return "Grid Item " + strconv.Itoa(e.Index+1)
}

// Defaults returns the style a cell at index has when it carries no override:
// every attribute comes from the grid, spans are 1.
func Defaults(s Settings, index int) Effective {
	def := Default()
	return Effective{
		Index:           index,
		ID:              ItemID(index),
		RowSpan:         1,
		ColSpan:         1,
		AspectRatio:     pick(s.AspectRatio, def.AspectRatio, AspectRatio.Valid),
		CornerType:      pick(s.CornerType, def.CornerType, CornerType.Valid),
		CornerCustom:    max(s.CornerCustom, 0),
		BorderStyle:     pick(s.BorderStyle, def.BorderStyle, BorderStyle.Valid),
		BorderColor:     pick(s.BorderColor, def.BorderColor, BorderColor.Valid),
		BackgroundColor: pick(s.BackgroundColor, DefaultBackground, IsHexColor),
		Text:            "",
		TextColor:       DefaultTextColor,
		TextStyle:       DefaultTextStyle,
	}
}

// Resolve computes the effective style of the cell at index by overlaying the
// cell override on the grid defaults, which in turn sit on the built-in
// defaults. Spans are clamped against the current dimensions on every call so
// overrides written before the grid shrank never leak out of bounds.
func Resolve(s Settings, index int) Effective {
	eff := Defaults(s, index)
	item, ok := s.Items[index]
	if !ok {
		return eff
	}

	eff.RowSpan = clamp(item.RowSpan, 1, max(s.Rows, 1))
	eff.ColSpan = clamp(item.ColSpan, 1, max(s.Columns, 1))
	eff.AspectRatio = overlay(item.AspectRatio, eff.AspectRatio, AspectRatio.Valid)
	eff.CornerType = overlay(item.CornerType, eff.CornerType, CornerType.Valid)
	eff.BorderStyle = overlay(item.BorderStyle, eff.BorderStyle, BorderStyle.Valid)
	eff.BorderColor = overlay(item.BorderColor, eff.BorderColor, BorderColor.Valid)
	eff.BackgroundColor = overlay(item.BackgroundColor, eff.BackgroundColor, IsHexColor)
	eff.TextColor = overlay(item.TextColor, eff.TextColor, IsHexColor)
	if item.Text != nil {
		eff.Text = *item.Text
	}

	ts := item.TextStyle
	eff.TextStyle.Size = overlay(ts.Size, eff.TextStyle.Size, TextSize.Valid)
	eff.TextStyle.Weight = overlay(ts.Weight, eff.TextStyle.Weight, TextWeight.Valid)
	eff.TextStyle.Align = overlay(ts.Align, eff.TextStyle.Align, TextAlign.Valid)
	eff.TextStyle.Transform = overlay(ts.Transform, eff.TextStyle.Transform, TextTransform.Valid)

	return eff
}

// ResolveAll resolves every rendered cell, 0 through ItemCount-1.
func ResolveAll(s Settings) []Effective {
	count := clamp(s.ItemCount, 0, MaxItems)
	out := make([]Effective, count)
	for i := range out {
		out[i] = Resolve(s, i)
	}
	return out
}

func overlay[T any](override *T, fallback T, valid func(T) bool) T {
	if override == nil || !valid(*override) {
		return fallback
	}
	return *override
}

func pick[T any](value, fallback T, valid func(T) bool) T {
	if valid(value) {
		return value
	}
	return fallback
}
