package goredit

import "io"

// Version is the banner version string.
const Version = "0.1.0"

// Cursor is the editor cursor position, zero-indexed from the top-left
// corner. Movement clamps at the screen edges and never wraps.
type Cursor struct {
	X int
	Y int
}

func (c *Cursor) Up() {
	c.Y--
	if c.Y < 0 {
		c.Y = 0
	}
}

func (c *Cursor) Down(rows int) {
	c.Y++
	if c.Y > rows-1 {
		c.Y = rows - 1
	}
}

func (c *Cursor) Forward(cols int) {
	c.X++
	if c.X > cols-1 {
		c.X = cols - 1
	}
}

func (c *Cursor) Back() {
	c.X--
	if c.X < 0 {
		c.X = 0
	}
}

// Editor drives the render/decode/apply loop over a decoder and a renderer.
// It never touches the terminal device itself; session setup and teardown
// belong to the caller.

type Editor struct {
	decoder  *Decoder
	renderer *Renderer
	size     WindowSize
	cursor   Cursor
}

// NewEditor builds an editor reading raw bytes from src and writing frames
// to dst, for a screen of the given size.
func NewEditor(src io.Reader, dst io.Writer, size WindowSize) *Editor {
	return &Editor{
		decoder:  NewDecoder(src),
		renderer: NewRenderer(dst, "goredit -- version "+Version),
		size:     size,
	}
}

// Cursor reports the current cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// apply updates editor state for one event and reports whether the loop
// should keep running.
func (e *Editor) apply(ev Event) bool {
	switch ev {
	case EventQuit:
		return false
	case EventMoveUp:
		e.cursor.Up()
	case EventMoveDown:
		e.cursor.Down(e.size.Rows)
	case EventMoveRight:
		e.cursor.Forward(e.size.Cols)
	case EventMoveLeft:
		e.cursor.Back()
	}
	return true
}

// Run renders a frame, blocks for one decoded event, applies it, and
// repeats until Quit. On quit it emits a final clear-screen frame and
// returns nil. Any read or write error aborts the tick and propagates to
// the caller, whose deferred session restore runs before the error is
// reported.
func (e *Editor) Run() error {
	for {
		e.renderer.Render(e.size, e.cursor)
		if err := e.renderer.Flush(); err != nil {
			return err
		}

		ev, err := e.decoder.Decode()
		if err != nil {
			return err
		}
		if !e.apply(ev) {
			break
		}
	}

	e.renderer.RenderFinal()
	return e.renderer.Flush()
}
