package goredit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// Renderer composes one full frame per tick into a reusable buffer and
// flushes it to the output in a single write, so the terminal never sees a
// partial frame.

type Renderer struct {
	dst    io.Writer
	buf    bytes.Buffer
	banner string
}

// NewRenderer creates a renderer writing frames to dst. banner, if
// non-empty, is drawn centered a third of the way down the screen.
func NewRenderer(dst io.Writer, banner string) *Renderer {
	return &Renderer{dst: dst, banner: banner}
}

// Render rebuilds the frame buffer: hide cursor, home, one tilde row per
// screen line with a clear-to-end-of-line after each, then the cursor
// placed at its 1-indexed position and shown again.
func (r *Renderer) Render(size WindowSize, cursor Cursor) {
	r.buf.Reset()
	r.buf.WriteString(ansiHideCursor)
	r.buf.WriteString(ansiCursorHome)

	for y := 0; y < size.Rows; y++ {
		if r.banner != "" && y == size.Rows/3 {
			r.drawBanner(size.Cols)
		} else {
			r.buf.WriteByte('~')
		}
		r.buf.WriteString(ansiClearLine)
		if y < size.Rows-1 {
			r.buf.WriteString("\r\n")
		}
	}

	r.buf.WriteString(ansiCursorTo(cursor.Y+1, cursor.X+1))
	r.buf.WriteString(ansiShowCursor)
}

// drawBanner writes the banner row: tilde, centering spaces, banner text.
// Width is measured in display columns, not bytes.
func (r *Renderer) drawBanner(cols int) {
	banner := runewidth.Truncate(r.banner, cols, "")
	padding := (cols - runewidth.StringWidth(banner)) / 2
	if padding > 0 {
		// The first padding column is the tilde itself
		r.buf.WriteByte('~')
		r.buf.WriteString(strings.Repeat(" ", padding-1))
	}
	r.buf.WriteString(banner)
}

// RenderFinal builds the teardown frame: wipe the screen and park the
// cursor at the origin, leaving a clean terminal behind.
func (r *Renderer) RenderFinal() {
	r.buf.Reset()
	r.buf.WriteString(ansiClearScreen)
	r.buf.WriteString(ansiCursorHome)
}

// Flush writes the whole accumulated frame in one call and resets the
// buffer for the next tick.
func (r *Renderer) Flush() error {
	if _, err := r.dst.Write(r.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	r.buf.Reset()
	return nil
}
