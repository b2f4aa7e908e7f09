// Package style maps resolved cell styles to presentation fragments: utility
// class names and inline CSS declarations. Closed enums are only ever looked
// up in fixed tables, never interpolated into a class name.
package style

import (
	"strconv"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
)

// Declaration is one inline CSS property.
type Declaration struct {
	Property string
	Value    string
}

var aspectClasses = map[grid.AspectRatio]string{
	grid.AspectSquare:    "aspect-square",
	grid.AspectVideo:     "aspect-video",
	grid.AspectStandard:  "aspect-[4/3]",
	grid.AspectPhoto:     "aspect-[3/2]",
	grid.AspectPanoramic: "aspect-[2/1]",
	grid.AspectAuto:      "",
}

var borderWidthClasses = map[grid.BorderStyle]string{
	grid.BorderThin:   "border",
	grid.BorderMedium: "border-2",
	grid.BorderThick:  "border-4",
}

var borderColorClasses = map[grid.BorderColor]string{
	grid.BorderGray:   "border-gray-700",
	grid.BorderWhite:  "border-white",
	grid.BorderBlue:   "border-blue-500",
	grid.BorderGreen:  "border-green-500",
	grid.BorderPurple: "border-purple-500",
	grid.BorderOrange: "border-orange-500",
}

var borderColorHex = map[grid.BorderColor]string{
	grid.BorderGray:   "#374151",
	grid.BorderWhite:  "#FFFFFF",
	grid.BorderBlue:   "#3B82F6",
	grid.BorderGreen:  "#22C55E",
	grid.BorderPurple: "#A855F7",
	grid.BorderOrange: "#F97316",
}

// Border widths in CSS pixels, matching the width classes above.
var borderWidthPx = map[grid.BorderStyle]int{
	grid.BorderThin:   1,
	grid.BorderMedium: 2,
	grid.BorderThick:  4,
}

var cornerClasses = map[grid.CornerType]string{
	grid.CornerSmall:  "rounded-sm",
	grid.CornerMedium: "rounded-md",
	grid.CornerLarge:  "rounded-lg",
	grid.CornerFull:   "rounded-full",
}

// Corner radii in CSS pixels for the named corner types.
var cornerRadiusPx = map[grid.CornerType]int{
	grid.CornerSmall:  2,
	grid.CornerMedium: 6,
	grid.CornerLarge:  8,
	grid.CornerFull:   9999,
}

var textSizeClasses = map[grid.TextSize]string{
	grid.TextXS:   "text-xs",
	grid.TextSM:   "text-sm",
	grid.TextBase: "text-base",
	grid.TextLG:   "text-lg",
	grid.TextXL:   "text-xl",
	grid.Text2XL:  "text-2xl",
}

var textWeightClasses = map[grid.TextWeight]string{
	grid.WeightNormal:   "font-normal",
	grid.WeightMedium:   "font-medium",
	grid.WeightSemibold: "font-semibold",
	grid.WeightBold:     "font-bold",
}

var textAlignClasses = map[grid.TextAlign]string{
	grid.AlignLeft:   "text-left",
	grid.AlignCenter: "text-center",
	grid.AlignRight:  "text-right",
}

var textTransformClasses = map[grid.TextTransform]string{
	grid.TransformUppercase:  "uppercase",
	grid.TransformLowercase:  "lowercase",
	grid.TransformCapitalize: "capitalize",
}

// cellUtilities close every cell's class list.
var cellUtilities = []string{
	"flex",
	"items-center",
	"justify-center",
	"p-4",
	"transition-all",
	"duration-200",
	"hover:opacity-80",
}

const defaultBorderColorClass = "border-gray-700"

// AspectRatio returns the aspect class for ratio. Auto has no class; unknown
// ratios fall back to a square.
func AspectRatio(ratio grid.AspectRatio) string {
	if class, ok := aspectClasses[ratio]; ok {
		return class
	}
	return aspectClasses[grid.AspectSquare]
}

// Border returns the width and color classes for a border, or nothing when
// the border is off. Unknown colors fall back to neutral gray.
func Border(style grid.BorderStyle, color grid.BorderColor) []string {
	width, ok := borderWidthClasses[style]
	if !ok {
		return nil
	}
	colorClass, ok := borderColorClasses[color]
	if !ok {
		colorClass = defaultBorderColorClass
	}
	return []string{width, colorClass}
}

// BorderActive reports whether style draws a border at all.
func BorderActive(style grid.BorderStyle) bool {
	_, ok := borderWidthClasses[style]
	return ok
}

// BorderHex returns the hex value of a palette color.
func BorderHex(color grid.BorderColor) string {
	if hex, ok := borderColorHex[color]; ok {
		return hex
	}
	return borderColorHex[grid.BorderGray]
}

// BorderWidth returns the border width in pixels, 0 when there is none.
func BorderWidth(style grid.BorderStyle) int {
	return borderWidthPx[style]
}

// Corner returns the rounding class. A custom corner only produces a class
// when its radius is positive.
func Corner(corner grid.CornerType, custom int) string {
	if corner == grid.CornerCustom {
		if custom > 0 {
			return "rounded-[" + strconv.Itoa(custom) + "px]"
		}
		return ""
	}
	return cornerClasses[corner]
}

// CornerRadius returns the corner radius in pixels.
func CornerRadius(corner grid.CornerType, custom int) int {
	if corner == grid.CornerCustom {
		return max(custom, 0)
	}
	return cornerRadiusPx[corner]
}

// Text returns the text classes in size, weight, align, transform order.
// A transform of none is omitted.
func Text(ts grid.TextStyle) []string {
	return compact(
		textSizeClasses[ts.Size],
		textWeightClasses[ts.Weight],
		textAlignClasses[ts.Align],
		textTransformClasses[ts.Transform],
	)
}

// Classes composes the full class list of a cell.
func Classes(eff grid.Effective) []string {
	classes := make([]string, 0, 16)
	classes = append(classes, Border(eff.BorderStyle, eff.BorderColor)...)
	classes = append(classes, compact(Corner(eff.CornerType, eff.CornerCustom), AspectRatio(eff.AspectRatio))...)
	classes = append(classes, Text(eff.TextStyle)...)
	classes = append(classes, cellUtilities...)
	return classes
}

// Declarations composes the inline style of a cell: its spans, its
// background and, when a border is drawn, the border color.
func Declarations(eff grid.Effective) []Declaration {
	decls := []Declaration{
		{Property: "grid-column", Value: Span(eff.ColSpan)},
		{Property: "grid-row", Value: Span(eff.RowSpan)},
		{Property: "background-color", Value: eff.BackgroundColor},
	}
	if BorderActive(eff.BorderStyle) {
		decls = append(decls, Declaration{Property: "border-color", Value: BorderHex(eff.BorderColor)})
	}
	return decls
}

// Span formats a track span as a grid-column or grid-row value.
func Span(n int) string {
	s := strconv.Itoa(max(n, 1))
	return "span " + s + " / span " + s
}

func compact(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
