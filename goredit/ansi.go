package goredit

import "fmt"

// VT100 escape sequences used by the renderer.
// Reference: https://vt100.net/docs/vt100-ug/chapter3.html
const (
	ansiClearScreen = "\x1b[2J" // erase entire display
	ansiCursorHome  = "\x1b[H"  // cursor to row 1, col 1
	ansiClearLine   = "\x1b[K"  // erase from cursor to end of line
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
)

// ansiCursorTo positions the cursor at a 1-indexed row and column.
func ansiCursorTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}
