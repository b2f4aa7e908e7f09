package grid

import (
	"fmt"
	"strings"

	bentoerrors "github.com/alexisbeaulieu97/bentogrid/pkg/errors"
)

// ItemField names a per-cell attribute.
type ItemField string

const (
	ItemRowSpan         ItemField = "rowSpan"
	ItemColSpan         ItemField = "colSpan"
	ItemAspectRatio     ItemField = "aspectRatio"
	ItemCornerType      ItemField = "cornerType"
	ItemBorderStyle     ItemField = "borderStyle"
	ItemBorderColor     ItemField = "borderColor"
	ItemBackgroundColor ItemField = "backgroundColor"
	ItemText            ItemField = "text"
	ItemTextColor       ItemField = "textColor"
	ItemTextSize        ItemField = "textSize"
	ItemTextWeight      ItemField = "textWeight"
	ItemTextAlign       ItemField = "textAlign"
	ItemTextTransform   ItemField = "textTransform"
)

// ItemFields lists every per-cell attribute.
var ItemFields = []ItemField{
	ItemRowSpan, ItemColSpan, ItemAspectRatio, ItemCornerType,
	ItemBorderStyle, ItemBorderColor, ItemBackgroundColor,
	ItemText, ItemTextColor,
	ItemTextSize, ItemTextWeight, ItemTextAlign, ItemTextTransform,
}

var itemFieldAliases = map[string]ItemField{
	"corner":     ItemCornerType,
	"border":     ItemBorderStyle,
	"background": ItemBackgroundColor,
	"aspect":     ItemAspectRatio,
}

// ParseItemField looks up a cell attribute by name, with the same matching
// rules as ParseField. The short names corner, border, background and aspect
// are accepted as well.
func ParseItemField(name string) (ItemField, bool) {
	key := fieldKey(name)
	if f, ok := itemFieldAliases[key]; ok {
		return f, true
	}
	for _, f := range ItemFields {
		if fieldKey(string(f)) == key {
			return f, true
		}
	}
	return "", false
}

// NewItemUpdate builds an update that changes a single cell attribute.
// Values are checked the way UpdateField checks grid values; the error is an
// *errors.InputError.
func NewItemUpdate(field ItemField, value any) (ItemUpdate, error) {
	var u ItemUpdate
	name := Field(field)

	switch field {
	case ItemRowSpan, ItemColSpan:
		n, err := intValue(name, value)
		if err != nil {
			return u, err
		}
		if field == ItemRowSpan {
			u.RowSpan = &n
		} else {
			u.ColSpan = &n
		}
	case ItemAspectRatio:
		v, err := enumValue(name, value, AspectRatio.Valid)
		if err != nil {
			return u, err
		}
		u.AspectRatio = &v
	case ItemCornerType:
		v, err := enumValue(name, value, CornerType.Valid)
		if err != nil {
			return u, err
		}
		u.CornerType = &v
	case ItemBorderStyle:
		v, err := enumValue(name, value, BorderStyle.Valid)
		if err != nil {
			return u, err
		}
		u.BorderStyle = &v
	case ItemBorderColor:
		v, err := enumValue(name, value, BorderColor.Valid)
		if err != nil {
			return u, err
		}
		u.BorderColor = &v
	case ItemBackgroundColor, ItemTextColor:
		raw, ok := value.(string)
		raw = strings.TrimSpace(raw)
		if !ok || !IsHexColor(raw) {
			return u, invalidColor(string(field), fmt.Sprint(value))
		}
		if field == ItemBackgroundColor {
			u.BackgroundColor = &raw
		} else {
			u.TextColor = &raw
		}
	case ItemText:
		text, ok := value.(string)
		if !ok {
			text = fmt.Sprint(value)
		}
		u.Text = &text
	case ItemTextSize:
		v, err := enumValue(name, value, TextSize.Valid)
		if err != nil {
			return u, err
		}
		u.TextStyle.Size = &v
	case ItemTextWeight:
		v, err := enumValue(name, value, TextWeight.Valid)
		if err != nil {
			return u, err
		}
		u.TextStyle.Weight = &v
	case ItemTextAlign:
		v, err := enumValue(name, value, TextAlign.Valid)
		if err != nil {
			return u, err
		}
		u.TextStyle.Align = &v
	case ItemTextTransform:
		v, err := enumValue(name, value, TextTransform.Valid)
		if err != nil {
			return u, err
		}
		u.TextStyle.Transform = &v
	default:
		return u, bentoerrors.NewInputError(string(field), fmt.Sprint(value), "unknown field", nil)
	}

	return u, nil
}
