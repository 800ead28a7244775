// Command goredit is a raw-mode terminal editor skeleton: it takes over the
// controlling terminal, draws a tilde-column frame each tick, and moves the
// cursor with the arrow keys. Ctrl-Q quits.
package main

import (
	"fmt"
	"os"

	"github.com/scottpeterman/goredit/goredit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "goredit: %v\n", err)
		os.Exit(1)
	}
}

// run scopes the raw-mode session: by the time an error escapes to main,
// the deferred Restore has already put the terminal back in cooked mode.
func run() error {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	session := goredit.NewSession(tty)
	if err := session.EnterRaw(); err != nil {
		return err
	}
	defer session.Restore()

	size, err := session.WindowSize()
	if err != nil {
		return err
	}

	return goredit.NewEditor(tty, os.Stdout, size).Run()
}
