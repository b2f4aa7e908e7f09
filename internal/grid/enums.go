package grid

// CornerType selects the corner rounding of a cell.
type CornerType string

const (
	CornerNone   CornerType = "none"
	CornerSmall  CornerType = "sm"
	CornerMedium CornerType = "md"
	CornerLarge  CornerType = "lg"
	CornerFull   CornerType = "full"
	CornerCustom CornerType = "custom"
)

// CornerTypes lists every corner type in the order the editor cycles them.
var CornerTypes = []CornerType{CornerNone, CornerSmall, CornerMedium, CornerLarge, CornerFull, CornerCustom}

// Valid reports whether c is a known corner type.
func (c CornerType) Valid() bool { return contains(CornerTypes, c) }

// AspectRatio is the width:height ratio a cell keeps.
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectVideo     AspectRatio = "16:9"
	AspectStandard  AspectRatio = "4:3"
	AspectPhoto     AspectRatio = "3:2"
	AspectPanoramic AspectRatio = "2:1"
	AspectAuto      AspectRatio = "auto"
)

// AspectRatios lists every aspect ratio in the order the editor cycles them.
var AspectRatios = []AspectRatio{AspectSquare, AspectVideo, AspectStandard, AspectPhoto, AspectPanoramic, AspectAuto}

// Valid reports whether a is a known aspect ratio.
func (a AspectRatio) Valid() bool { return contains(AspectRatios, a) }

// BorderStyle is the border width keyword.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderThin   BorderStyle = "thin"
	BorderMedium BorderStyle = "medium"
	BorderThick  BorderStyle = "thick"
)

// BorderStyles lists every border style.
var BorderStyles = []BorderStyle{BorderNone, BorderThin, BorderMedium, BorderThick}

// Valid reports whether b is a known border style.
func (b BorderStyle) Valid() bool { return contains(BorderStyles, b) }

// BorderColor is one of the named border palette entries.
type BorderColor string

const (
	BorderGray   BorderColor = "gray"
	BorderWhite  BorderColor = "white"
	BorderBlue   BorderColor = "blue"
	BorderGreen  BorderColor = "green"
	BorderPurple BorderColor = "purple"
	BorderOrange BorderColor = "orange"
)

// BorderColors lists the border palette.
var BorderColors = []BorderColor{BorderGray, BorderWhite, BorderBlue, BorderGreen, BorderPurple, BorderOrange}

// Valid reports whether b is a known border color.
func (b BorderColor) Valid() bool { return contains(BorderColors, b) }

type TextSize string

const (
	TextXS   TextSize = "xs"
	TextSM   TextSize = "sm"
	TextBase TextSize = "base"
	TextLG   TextSize = "lg"
	TextXL   TextSize = "xl"
	Text2XL  TextSize = "2xl"
)

var TextSizes = []TextSize{TextXS, TextSM, TextBase, TextLG, TextXL, Text2XL}

func (t TextSize) Valid() bool { return contains(TextSizes, t) }

type TextWeight string

const (
	WeightNormal   TextWeight = "normal"
	WeightMedium   TextWeight = "medium"
	WeightSemibold TextWeight = "semibold"
	WeightBold     TextWeight = "bold"
)

var TextWeights = []TextWeight{WeightNormal, WeightMedium, WeightSemibold, WeightBold}

func (t TextWeight) Valid() bool { return contains(TextWeights, t) }

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

var TextAligns = []TextAlign{AlignLeft, AlignCenter, AlignRight}

func (t TextAlign) Valid() bool { return contains(TextAligns, t) }

type TextTransform string

const (
	TransformNone       TextTransform = "none"
	TransformUppercase  TextTransform = "uppercase"
	TransformLowercase  TextTransform = "lowercase"
	TransformCapitalize TextTransform = "capitalize"
)

var TextTransforms = []TextTransform{TransformNone, TransformUppercase, TransformLowercase, TransformCapitalize}

func (t TextTransform) Valid() bool { return contains(TextTransforms, t) }

// Next returns the value following current in values, wrapping around. An
// unknown current value yields the first entry.
func Next[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
