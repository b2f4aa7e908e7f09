package grid

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsHexColor reports whether value is a #RGB or #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// PresetColors is the background palette offered by the editor.
var PresetColors = []string{
	"#1F2937",
	"#1E40AF",
	"#064E3B",
	"#581C87",
	"#7C2D12",
	"#000000",
	"#18181B",
	"#0F172A",
	"#312E81",
	"#831843",
	"#881337",
	"#14532D",
}
