package core

// Color is a terminal foreground color for a screen cell.
// Values are lipgloss color specs: ANSI 256 codes ("1", "208") or hex ("#ffd166").
// The empty string means the terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault   Color = ""
	ColorWhite     Color = "7"
	ColorBrightRed Color = "9"
	ColorGray      Color = "245"

	// Runner palette.
	ColorObstacle Color = "#ff4d4f"
	ColorCoin     Color = "#ffd166"
	ColorGround   Color = "#0f1724"
)
