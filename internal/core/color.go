package core

// Color is a terminal color in "#rrggbb" form.
// The zero value means the terminal's default color.
type Color string

// Colors used by the interface chrome. Swatches carry their own colors.
const (
	ColorDefault Color = ""
	ColorCorrect Color = "#5fd75f"
	ColorWrong   Color = "#ff5f5f"
	ColorMuted   Color = "#8a8a8a"
	ColorAccent  Color = "#ffd75f"
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cleared state of a cell.
var blank = Cell{Rune: ' '}
