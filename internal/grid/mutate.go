package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	bentoerrors "github.com/alexisbeaulieu97/bentogrid/pkg/errors"
)

// ItemUpdate is a partial change to one cell. Nil fields keep whatever the
// cell had before.
type ItemUpdate struct {
	RowSpan         *int
	ColSpan         *int
	AspectRatio     *AspectRatio
	CornerType      *CornerType
	BorderStyle     *BorderStyle
	BorderColor     *BorderColor
	BackgroundColor *string
	Text            *string
	TextColor       *string
	TextStyle       TextStyleOverride
}

// Validate reports the first enum or color in u that UpdateItem would discard.
// Spans are never rejected; they are clamped.
func (u ItemUpdate) Validate() error {
	switch {
	case u.AspectRatio != nil && !u.AspectRatio.Valid():
		return invalidEnum("aspectRatio", string(*u.AspectRatio))
	case u.CornerType != nil && !u.CornerType.Valid():
		return invalidEnum("cornerType", string(*u.CornerType))
	case u.BorderStyle != nil && !u.BorderStyle.Valid():
		return invalidEnum("borderStyle", string(*u.BorderStyle))
	case u.BorderColor != nil && !u.BorderColor.Valid():
		return invalidEnum("borderColor", string(*u.BorderColor))
	case u.BackgroundColor != nil && !IsHexColor(*u.BackgroundColor):
		return invalidColor("backgroundColor", *u.BackgroundColor)
	case u.TextColor != nil && !IsHexColor(*u.TextColor):
		return invalidColor("textColor", *u.TextColor)
	case u.TextStyle.Size != nil && !u.TextStyle.Size.Valid():
		return invalidEnum("textStyle.size", string(*u.TextStyle.Size))
	case u.TextStyle.Weight != nil && !u.TextStyle.Weight.Valid():
		return invalidEnum("textStyle.weight", string(*u.TextStyle.Weight))
	case u.TextStyle.Align != nil && !u.TextStyle.Align.Valid():
		return invalidEnum("textStyle.align", string(*u.TextStyle.Align))
	case u.TextStyle.Transform != nil && !u.TextStyle.Transform.Valid():
		return invalidEnum("textStyle.transform", string(*u.TextStyle.Transform))
	}
	return nil
}

// UpdateField returns s with one grid-level field replaced.
//
// Numeric fields accept ints, floats and numeric strings and are clamped into
// range. Anything that cannot be read as a number, an unknown enum value or a
// malformed color is rejected: the returned settings equal s and the error is
// an *errors.InputError. Changing rows or columns leaves existing overrides
// untouched; Resolve clamps their spans on read.
func UpdateField(s Settings, field Field, value any) (Settings, error) {
	next := s.Clone()

	switch field {
	case FieldColumns, FieldRows, FieldGap, FieldItemCount, FieldCornerCustom:
		n, err := intValue(field, value)
		if err != nil {
			return s, err
		}
		switch field {
		case FieldColumns:
			next.Columns = clamp(n, 1, MaxTracks)
		case FieldRows:
			next.Rows = clamp(n, 1, MaxTracks)
		case FieldGap:
			next.Gap = max(n, 0)
		case FieldItemCount:
			next.ItemCount = clamp(n, 1, MaxItems)
		case FieldCornerCustom:
			next.CornerCustom = max(n, 0)
		}
	case FieldUseImages:
		b, err := boolValue(field, value)
		if err != nil {
			return s, err
		}
		next.UseImages = b
	case FieldCornerType:
		v, err := enumValue(field, value, CornerType.Valid)
		if err != nil {
			return s, err
		}
		next.CornerType = v
	case FieldAspectRatio:
		v, err := enumValue(field, value, AspectRatio.Valid)
		if err != nil {
			return s, err
		}
		next.AspectRatio = v
	case FieldBorderStyle:
		v, err := enumValue(field, value, BorderStyle.Valid)
		if err != nil {
			return s, err
		}
		next.BorderStyle = v
	case FieldBorderColor:
		v, err := enumValue(field, value, BorderColor.Valid)
		if err != nil {
			return s, err
		}
		next.BorderColor = v
	case FieldBackgroundColor:
		raw, ok := value.(string)
		if !ok || !IsHexColor(strings.TrimSpace(raw)) {
			return s, invalidColor(string(field), fmt.Sprint(value))
		}
		next.BackgroundColor = strings.TrimSpace(raw)
	default:
		return s, bentoerrors.NewInputError(string(field), fmt.Sprint(value), "unknown field", nil)
	}

	return next, nil
}

// UpdateFieldString applies raw text typed by a user to the named field.
func UpdateFieldString(s Settings, name, raw string) (Settings, error) {
	field, ok := ParseField(name)
	if !ok {
		return s, bentoerrors.NewInputError(name, raw, "unknown field", nil)
	}
	return UpdateField(s, field, raw)
}

// UpdateItem returns s with the override at index replaced by the merge of u,
// the previous override, the grid defaults and a span of 1, in that order.
// Spans are clamped to the current rows and columns. Invalid enums or colors in
// u are skipped. Indices outside [0, MaxItems) leave s unchanged.
func UpdateItem(s Settings, index int, u ItemUpdate) Settings {
	if index < 0 || index >= MaxItems {
		return s
	}

	prev := s.Items[index]
	def := Defaults(s, index)

	item := ItemOverride{
		RowSpan:         clamp(span(u.RowSpan, prev.RowSpan), 1, max(s.Rows, 1)),
		ColSpan:         clamp(span(u.ColSpan, prev.ColSpan), 1, max(s.Columns, 1)),
		AspectRatio:     merge(u.AspectRatio, prev.AspectRatio, def.AspectRatio, AspectRatio.Valid),
		CornerType:      merge(u.CornerType, prev.CornerType, def.CornerType, CornerType.Valid),
		BorderStyle:     merge(u.BorderStyle, prev.BorderStyle, def.BorderStyle, BorderStyle.Valid),
		BorderColor:     merge(u.BorderColor, prev.BorderColor, def.BorderColor, BorderColor.Valid),
		BackgroundColor: merge(u.BackgroundColor, prev.BackgroundColor, def.BackgroundColor, IsHexColor),
		Text:            first(u.Text, prev.Text, nil),
		TextColor:       first(u.TextColor, prev.TextColor, IsHexColor),
		TextStyle: TextStyleOverride{
			Size:      first(u.TextStyle.Size, prev.TextStyle.Size, TextSize.Valid),
			Weight:    first(u.TextStyle.Weight, prev.TextStyle.Weight, TextWeight.Valid),
			Align:     first(u.TextStyle.Align, prev.TextStyle.Align, TextAlign.Valid),
			Transform: first(u.TextStyle.Transform, prev.TextStyle.Transform, TextTransform.Valid),
		},
	}

	next := s.Clone()
	next.Items[index] = item
	return next
}

// ResetItem builds the update that returns a cell to the grid defaults: spans
// of 1, every style attribute equal to the current grid value and no text.
func ResetItem(s Settings) ItemUpdate {
	def := Defaults(s, 0)
	return ItemUpdate{
		RowSpan:         Ptr(1),
		ColSpan:         Ptr(1),
		AspectRatio:     Ptr(def.AspectRatio),
		CornerType:      Ptr(def.CornerType),
		BorderStyle:     Ptr(def.BorderStyle),
		BorderColor:     Ptr(def.BorderColor),
		BackgroundColor: Ptr(def.BackgroundColor),
		Text:            Ptr(""),
		TextColor:       Ptr(def.TextColor),
		TextStyle: TextStyleOverride{
			Size:      Ptr(def.TextStyle.Size),
			Weight:    Ptr(def.TextStyle.Weight),
			Align:     Ptr(def.TextStyle.Align),
			Transform: Ptr(def.TextStyle.Transform),
		},
	}
}

// RemoveItem drops the override at index entirely.
func RemoveItem(s Settings, index int) Settings {
	if _, ok := s.Items[index]; !ok {
		return s
	}
	next := s.Clone()
	delete(next.Items, index)
	return next
}

// Reset discards every change and returns the starting settings.
func Reset() Settings {
	return Default()
}

func span(requested *int, previous int) int {
	if requested != nil {
		return *requested
	}
	if previous > 0 {
		return previous
	}
	return 1
}

func merge[T any](update, previous *T, fallback T, valid func(T) bool) *T {
	if v := first(update, previous, valid); v != nil {
		return v
	}
	return &fallback
}

func first[T any](update, previous *T, valid func(T) bool) *T {
	if update != nil && (valid == nil || valid(*update)) {
		v := *update
		return &v
	}
	if previous != nil && (valid == nil || valid(*previous)) {
		v := *previous
		return &v
	}
	return nil
}

// saturate truncates v toward zero and pins it to the int32 range.
func saturate(v float64) int {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func intValue(field Field, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return saturate(float64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, bentoerrors.NewInputError(string(field), fmt.Sprint(v), "not a finite number", nil)
		}
		return saturate(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		// Out of range still yields the saturated value in n.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, bentoerrors.NewInputError(string(field), v, "not a number", err)
		}
		return saturate(float64(n)), nil
	default:
		return 0, bentoerrors.NewInputError(string(field), fmt.Sprint(value), "not a number", nil)
	}
}

func boolValue(field Field, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, bentoerrors.NewInputError(string(field), v, "not a boolean", err)
		}
		return b, nil
	default:
		return false, bentoerrors.NewInputError(string(field), fmt.Sprint(value), "not a boolean", nil)
	}
}

func enumValue[T ~string](field Field, value any, valid func(T) bool) (T, error) {
	var v T
	switch raw := value.(type) {
	case T:
		v = raw
	case string:
		v = T(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return v, bentoerrors.NewInputError(string(field), fmt.Sprint(value), "unsupported value type", nil)
	}
	if !valid(v) {
		return v, invalidEnum(string(field), string(v))
	}
	return v, nil
}

func invalidEnum(field, value string) error {
	return bentoerrors.NewInputError(field, value, "unknown value", nil)
}

func invalidColor(field, value string) error {
	return bentoerrors.NewInputError(field, value, "expected #RGB or #RRGGBB", nil)
}
