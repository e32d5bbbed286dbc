package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorPurple
	ColorBrown
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
	ColorIce
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorOrange:       "orange",
	ColorPink:         "pink",
	ColorPurple:       "purple",
	ColorBrown:        "brown",
	ColorGray:         "gray",
	ColorBrightWhite:  "bright_white",
	ColorBrightYellow: "bright_yellow",
	ColorIce:          "ice",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
