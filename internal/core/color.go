package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// PaletteBase is the first Color value reserved for configurable palette entries.
// Palette entry i is drawn with Color(PaletteBase + i).
const PaletteBase Color = 32

// MaxPaletteColors is the number of palette entries a Color can address.
const MaxPaletteColors = 256 - int(PaletteBase)

// PaletteColor returns the Color used for palette entry i.
func PaletteColor(i int) Color {
	return PaletteBase + Color(i)
}
