// Package grid holds the bento grid settings model, the pure functions that
// update it and the resolver that computes the effective style of each cell.
//
// Settings values are never mutated in place: every update returns a new value
// and the caller replaces the one it holds.
package grid

import (
	"fmt"
	"strings"
)

const (
	// MaxTracks bounds both the column and the row count.
	MaxTracks = 12
	// MaxItems bounds the number of rendered cells.
	MaxItems = MaxTracks * MaxTracks
	// GapUnitRem is the size of one gap step in rem.
	GapUnitRem = 0.25
)

// Built-in fallbacks used when neither an override nor a grid default supplies a value.
const (
	DefaultBackground = "#1F2937"
	DefaultTextColor  = "#9CA3AF"
)

// Settings is the complete description of a bento grid.
type Settings struct {
	Columns         int
	Rows            int
	Gap             int
	ItemCount       int
	CornerType      CornerType
	CornerCustom    int
	AspectRatio     AspectRatio
	UseImages       bool
	BackgroundColor string
	BorderStyle     BorderStyle
	BorderColor     BorderColor

	// Items maps a cell index to its override. Cells without an entry use the
	// grid defaults.
	Items map[int]ItemOverride
}

// ItemOverride replaces grid defaults for a single cell. Nil fields inherit.
type ItemOverride struct {
	RowSpan         int
	ColSpan         int
	AspectRatio     *AspectRatio
	CornerType      *CornerType
	BorderStyle     *BorderStyle
	BorderColor     *BorderColor
	BackgroundColor *string
	Text            *string
	TextColor       *string
	TextStyle       TextStyleOverride
}

// TextStyleOverride carries the optional text style attributes of a cell.
type TextStyleOverride struct {
	Size      *TextSize
	Weight    *TextWeight
	Align     *TextAlign
	Transform *TextTransform
}

// TextStyle is a fully resolved text style.
type TextStyle struct {
	Size      TextSize
	Weight    TextWeight
	Align     TextAlign
	Transform TextTransform
}

// DefaultTextStyle is the text style of a cell nobody has touched.
var DefaultTextStyle = TextStyle{
	Size:      TextSM,
	Weight:    WeightNormal,
	Align:     AlignCenter,
	Transform: TransformNone,
}

// Default returns the settings the editor starts with.
func Default() Settings {
	return Settings{
		Columns:         3,
		Rows:            2,
		Gap:             4,
		ItemCount:       6,
		CornerType:      CornerMedium,
		CornerCustom:    0,
		AspectRatio:     AspectSquare,
		UseImages:       false,
		BackgroundColor: DefaultBackground,
		BorderStyle:     BorderThin,
		BorderColor:     BorderGray,
		Items:           map[int]ItemOverride{},
	}
}

// ItemID derives the identifier of the cell at index. Identity is the index
// itself; the id is only a label.
func ItemID(index int) string {
	return fmt.Sprintf("item-%d", index+1)
}

// Clone returns a copy whose item map can be changed without affecting s.
func (s Settings) Clone() Settings {
	clone := s
	clone.Items = make(map[int]ItemOverride, len(s.Items))
	for index, item := range s.Items {
		clone.Items[index] = item
	}
	return clone
}

// Normalized returns s with every numeric field inside its valid range and
// every enum or color replaced by the built-in default when unknown.
func (s Settings) Normalized() Settings {
	n := s.Clone()
	n.Columns = clamp(n.Columns, 1, MaxTracks)
	n.Rows = clamp(n.Rows, 1, MaxTracks)
	n.ItemCount = clamp(n.ItemCount, 1, MaxItems)
	n.Gap = max(n.Gap, 0)
	n.CornerCustom = max(n.CornerCustom, 0)

	def := Default()
	if !n.CornerType.Valid() {
		n.CornerType = def.CornerType
	}
	if !n.AspectRatio.Valid() {
		n.AspectRatio = def.AspectRatio
	}
	if !n.BorderStyle.Valid() {
		n.BorderStyle = def.BorderStyle
	}
	if !n.BorderColor.Valid() {
		n.BorderColor = def.BorderColor
	}
	if !IsHexColor(n.BackgroundColor) {
		n.BackgroundColor = def.BackgroundColor
	}
	return n
}

// Field names a grid-level setting.
type Field string

const (
	FieldColumns         Field = "columns"
	FieldRows            Field = "rows"
	FieldGap             Field = "gap"
	FieldItemCount       Field = "itemCount"
	FieldCornerType      Field = "cornerType"
	FieldCornerCustom    Field = "cornerCustom"
	FieldAspectRatio     Field = "aspectRatio"
	FieldUseImages       Field = "useImages"
	FieldBackgroundColor Field = "backgroundColor"
	FieldBorderStyle     Field = "borderStyle"
	FieldBorderColor     Field = "borderColor"
)

// Fields lists every grid-level field.
var Fields = []Field{
	FieldColumns, FieldRows, FieldGap, FieldItemCount,
	FieldCornerType, FieldCornerCustom, FieldAspectRatio, FieldUseImages,
	FieldBackgroundColor, FieldBorderStyle, FieldBorderColor,
}

var fieldAliases = map[string]Field{
	"corner":     FieldCornerType,
	"border":     FieldBorderStyle,
	"background": FieldBackgroundColor,
	"aspect":     FieldAspectRatio,
}

// ParseField looks up a field by name. Matching ignores case, underscores and
// dashes, so "item_count", "item-count" and "itemCount" are all accepted, as
// are the layout file's short names corner, border, background and aspect.
func ParseField(name string) (Field, bool) {
	key := fieldKey(name)
	if f, ok := fieldAliases[key]; ok {
		return f, true
	}
	for _, f := range Fields {
		if fieldKey(string(f)) == key {
			return f, true
		}
	}
	return "", false
}

func fieldKey(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}
