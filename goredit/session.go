package goredit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ConfigError reports a failure to read, derive, or apply terminal
// attributes, or to query the terminal geometry. It is always fatal: the
// caller restores the session and exits.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("terminal config: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// WindowSize holds the terminal geometry queried once at startup.
type WindowSize struct {
	Rows int
	Cols int
}

// Session owns a terminal device for the lifetime of the editor

type Session struct {
	tty *os.File

	// Original attributes, captured once in EnterRaw
	orig     *unix.Termios
	restored bool
}

// NewSession wraps an already-open terminal device. The caller keeps
// ownership of the file; the session only mutates its attributes.
func NewSession(tty *os.File) *Session {
	return &Session{tty: tty}
}

// EnterRaw captures the current terminal attributes and switches the device
// into raw mode: no echo, no line buffering, no signal characters, no output
// post-processing, and a 100ms read timeout with no minimum byte count.
func (s *Session) EnterRaw() error {
	fd := int(s.tty.Fd())
	if !term.IsTerminal(fd) {
		return &ConfigError{Op: "enter raw mode", Err: fmt.Errorf("fd %d is not a terminal", fd)}
	}

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return &ConfigError{Op: "get attributes", Err: err}
	}
	s.orig = orig
	s.restored = false

	raw := *orig
	raw.Cflag |= unix.CS8
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Oflag &^= unix.OPOST

	// VMIN=0, VTIME=1: read returns whatever is available, or nothing
	// after a tenth of a second. The timeout is what keeps the editor
	// loop responsive without threads.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		s.orig = nil
		return &ConfigError{Op: "set raw attributes", Err: err}
	}
	return nil
}

// Restore reapplies the attributes captured by EnterRaw. It must run on
// every exit path; callers defer it right after a successful EnterRaw.
// Calling it again, or before EnterRaw, is a no-op.
func (s *Session) Restore() error {
	if s.orig == nil || s.restored {
		return nil
	}
	s.restored = true
	if err := unix.IoctlSetTermios(int(s.tty.Fd()), unix.TCSETSF, s.orig); err != nil {
		return &ConfigError{Op: "restore attributes", Err: err}
	}
	return nil
}

// WindowSize queries the terminal geometry via TIOCGWINSZ.
func (s *Session) WindowSize() (WindowSize, error) {
	ws, err := unix.IoctlGetWinsize(int(s.tty.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return WindowSize{}, &ConfigError{Op: "query window size", Err: err}
	}
	if ws.Row == 0 || ws.Col == 0 {
		return WindowSize{}, &ConfigError{Op: "query window size", Err: fmt.Errorf("degenerate size %dx%d", ws.Row, ws.Col)}
	}
	return WindowSize{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
