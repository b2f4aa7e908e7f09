package config

import (
	"sort"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
)

// CurrentVersion is the layout document schema version written by this build.
const CurrentVersion = "1"

// Document represents a bentogrid layout file.
type Document struct {
	Version string        `yaml:"version" validate:"required,oneof=1"`
	Name    string        `yaml:"name,omitempty" validate:"max=100"`
	Grid    GridSection   `yaml:"grid"`
	Items   []ItemSection `yaml:"items,omitempty" validate:"omitempty,dive"`
}

// GridSection holds the grid-level defaults. Omitted fields keep the editor defaults.
type GridSection struct {
	Columns      *int   `yaml:"columns,omitempty"`
	Rows         *int   `yaml:"rows,omitempty"`
	Gap          *int   `yaml:"gap,omitempty"`
	ItemCount    *int   `yaml:"item_count,omitempty"`
	Corner       string `yaml:"corner,omitempty" validate:"omitempty,corner"`
	CornerCustom *int   `yaml:"corner_custom,omitempty"`
	AspectRatio  string `yaml:"aspect_ratio,omitempty" validate:"omitempty,aspect"`
	UseImages    *bool  `yaml:"use_images,omitempty"`
	Background   string `yaml:"background,omitempty" validate:"omitempty,hex_color"`
	Border       string `yaml:"border,omitempty" validate:"omitempty,border"`
	BorderColor  string `yaml:"border_color,omitempty" validate:"omitempty,border_color"`
}

// ItemSection overrides the style of one cell.
type ItemSection struct {
	Index       int               `yaml:"index" validate:"min=0,max=143"`
	RowSpan     *int              `yaml:"row_span,omitempty"`
	ColSpan     *int              `yaml:"col_span,omitempty"`
	AspectRatio string            `yaml:"aspect_ratio,omitempty" validate:"omitempty,aspect"`
	Corner      string            `yaml:"corner,omitempty" validate:"omitempty,corner"`
	Border      string            `yaml:"border,omitempty" validate:"omitempty,border"`
	BorderColor string            `yaml:"border_color,omitempty" validate:"omitempty,border_color"`
	Background  string            `yaml:"background,omitempty" validate:"omitempty,hex_color"`
	Text        *string           `yaml:"text,omitempty"`
	TextColor   string            `yaml:"text_color,omitempty" validate:"omitempty,hex_color"`
	TextStyle   *TextStyleSection `yaml:"text_style,omitempty"`
}

// TextStyleSection carries optional text style attributes.
type TextStyleSection struct {
	Size      string `yaml:"size,omitempty" validate:"omitempty,text_size"`
	Weight    string `yaml:"weight,omitempty" validate:"omitempty,text_weight"`
	Align     string `yaml:"align,omitempty" validate:"omitempty,text_align"`
	Transform string `yaml:"transform,omitempty" validate:"omitempty,text_transform"`
}

// Settings builds grid settings from the document. Every value goes through
// the grid mutators, so numeric fields are clamped exactly as interactive
// edits are.
func (d *Document) Settings() (grid.Settings, error) {
	s := grid.Default()
	if d == nil {
		return s, nil
	}

	g := d.Grid
	updates := []struct {
		field grid.Field
		value any
		set   bool
	}{
		{grid.FieldColumns, deref(g.Columns), g.Columns != nil},
		{grid.FieldRows, deref(g.Rows), g.Rows != nil},
		{grid.FieldGap, deref(g.Gap), g.Gap != nil},
		{grid.FieldItemCount, deref(g.ItemCount), g.ItemCount != nil},
		{grid.FieldCornerType, g.Corner, g.Corner != ""},
		{grid.FieldCornerCustom, deref(g.CornerCustom), g.CornerCustom != nil},
		{grid.FieldAspectRatio, g.AspectRatio, g.AspectRatio != ""},
		{grid.FieldUseImages, deref(g.UseImages), g.UseImages != nil},
		{grid.FieldBackgroundColor, g.Background, g.Background != ""},
		{grid.FieldBorderStyle, g.Border, g.Border != ""},
		{grid.FieldBorderColor, g.BorderColor, g.BorderColor != ""},
	}

	for _, u := range updates {
		if !u.set {
			continue
		}
		next, err := grid.UpdateField(s, u.field, u.value)
		if err != nil {
			return s, err
		}
		s = next
	}

	for _, item := range d.Items {
		update := item.update()
		if err := update.Validate(); err != nil {
			return s, err
		}
		s = grid.UpdateItem(s, item.Index, update)
	}

	return s, nil
}

func (i ItemSection) update() grid.ItemUpdate {
	u := grid.ItemUpdate{
		RowSpan:         i.RowSpan,
		ColSpan:         i.ColSpan,
		AspectRatio:     optional[grid.AspectRatio](i.AspectRatio),
		CornerType:      optional[grid.CornerType](i.Corner),
		BorderStyle:     optional[grid.BorderStyle](i.Border),
		BorderColor:     optional[grid.BorderColor](i.BorderColor),
		BackgroundColor: optional[string](i.Background),
		Text:            i.Text,
		TextColor:       optional[string](i.TextColor),
	}
	if ts := i.TextStyle; ts != nil {
		u.TextStyle = grid.TextStyleOverride{
			Size:      optional[grid.TextSize](ts.Size),
			Weight:    optional[grid.TextWeight](ts.Weight),
			Align:     optional[grid.TextAlign](ts.Align),
			Transform: optional[grid.TextTransform](ts.Transform),
		}
	}
	return u
}

// FromSettings captures s as a document. Items are written in index order so
// the same settings always serialize identically.
func FromSettings(name string, s grid.Settings) *Document {
	doc := &Document{
		Version: CurrentVersion,
		Name:    name,
		Grid: GridSection{
			Columns:      grid.Ptr(s.Columns),
			Rows:         grid.Ptr(s.Rows),
			Gap:          grid.Ptr(s.Gap),
			ItemCount:    grid.Ptr(s.ItemCount),
			Corner:       string(s.CornerType),
			CornerCustom: grid.Ptr(s.CornerCustom),
			AspectRatio:  string(s.AspectRatio),
			UseImages:    grid.Ptr(s.UseImages),
			Background:   s.BackgroundColor,
			Border:       string(s.BorderStyle),
			BorderColor:  string(s.BorderColor),
		},
	}

	indices := make([]int, 0, len(s.Items))
	for index := range s.Items {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	for _, index := range indices {
		item := s.Items[index]
		section := ItemSection{
			Index:       index,
			RowSpan:     positive(item.RowSpan),
			ColSpan:     positive(item.ColSpan),
			AspectRatio: str(item.AspectRatio),
			Corner:      str(item.CornerType),
			Border:      str(item.BorderStyle),
			BorderColor: str(item.BorderColor),
			Background:  str(item.BackgroundColor),
			Text:        item.Text,
			TextColor:   str(item.TextColor),
		}
		ts := item.TextStyle
		if ts.Size != nil || ts.Weight != nil || ts.Align != nil || ts.Transform != nil {
			section.TextStyle = &TextStyleSection{
				Size:      str(ts.Size),
				Weight:    str(ts.Weight),
				Align:     str(ts.Align),
				Transform: str(ts.Transform),
			}
		}
		doc.Items = append(doc.Items, section)
	}

	return doc
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional[T ~string](value string) *T {
	if value == "" {
		return nil
	}
	v := T(value)
	return &v
}

func str[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
