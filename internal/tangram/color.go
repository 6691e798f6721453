package tangram

import "strings"

// ColorTag labels a piece for display. It carries no geometric meaning.
type ColorTag uint8

const (
	ColorRed ColorTag = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorBrown
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color tag.
func (c ColorTag) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorBrown:
		return "brown"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII
// rendering. Brown uses 'N' because 'B' belongs to blue.
func (c ColorTag) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorBrown:
		return 'N'
	default:
		return '?'
	}
}

// ParseColor converts a string to a ColorTag. Unrecognized input yields
// ColorRed and false rather than an error, so stored layouts with unknown
// color names still decode to usable pieces.
func ParseColor(s string) (ColorTag, bool) {
	switch strings.ToLower(s) {
	case "red":
		return ColorRed, true
	case "orange":
		return ColorOrange, true
	case "yellow":
		return ColorYellow, true
	case "green":
		return ColorGreen, true
	case "blue":
		return ColorBlue, true
	case "purple":
		return ColorPurple, true
	case "brown":
		return ColorBrown, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all valid color tags.
func AllColors() []ColorTag {
	return []ColorTag{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorBrown}
}
