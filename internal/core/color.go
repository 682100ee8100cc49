package core

// Color represents a foreground color for a screen cell.
// Hosts map these to ANSI 256-color codes or RGB values.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed           // mystery doors
	ColorGreen         // frog
	ColorYellow        // HUD highlights
	ColorBlue          // water background
	ColorMagenta       // pelican
	ColorCyan          // plan markers
	ColorWhite         // text
	ColorOrange        // house
	ColorGray          // rocks, grid
)
