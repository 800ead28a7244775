package goredit

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func openTestPty(t *testing.T) (ptm, pts *os.File) {
	t.Helper()
	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		ptm.Close()
		pts.Close()
	})
	return ptm, pts
}

func TestSessionAttributeRoundTrip(t *testing.T) {
	_, pts := openTestPty(t)
	fd := int(pts.Fd())

	before, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)

	s := NewSession(pts)
	require.NoError(t, s.EnterRaw())

	raw, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)
	assert.Zero(t, raw.Lflag&(unix.ECHO|unix.ICANON|unix.IEXTEN|unix.ISIG))
	assert.Zero(t, raw.Iflag&(unix.BRKINT|unix.ICRNL|unix.INPCK|unix.ISTRIP|unix.IXON))
	assert.Zero(t, raw.Oflag&unix.OPOST)
	assert.NotZero(t, raw.Cflag&unix.CS8)
	assert.EqualValues(t, 0, raw.Cc[unix.VMIN])
	assert.EqualValues(t, 1, raw.Cc[unix.VTIME], "reads time out after a tenth of a second")

	require.NoError(t, s.Restore())

	after, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)
	assert.Equal(t, *before, *after, "restore brings back the exact original attributes")
}

func TestSessionRestoreIsIdempotent(t *testing.T) {
	_, pts := openTestPty(t)

	s := NewSession(pts)
	require.NoError(t, s.EnterRaw())
	require.NoError(t, s.Restore())

	// Mutate the terminal after restore; a second Restore must not undo it
	changed, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	require.NoError(t, err)
	changed.Lflag &^= unix.ECHO
	require.NoError(t, unix.IoctlSetTermios(int(pts.Fd()), unix.TCSETSF, changed))

	require.NoError(t, s.Restore())
	got, err := unix.IoctlGetTermios(int(pts.Fd()), unix.TCGETS)
	require.NoError(t, err)
	assert.Zero(t, got.Lflag&unix.ECHO)
}

func TestSessionRestoreBeforeEnterIsNoOp(t *testing.T) {
	_, pts := openTestPty(t)
	assert.NoError(t, NewSession(pts).Restore())
}

func TestEnterRawRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	err = NewSession(f).EnterRaw()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "enter raw mode", cfgErr.Op)
}

func TestWindowSize(t *testing.T) {
	ptm, pts := openTestPty(t)
	require.NoError(t, pty.Setsize(ptm, &pty.Winsize{Rows: 24, Cols: 80}))

	size, err := NewSession(pts).WindowSize()
	require.NoError(t, err)
	assert.Equal(t, WindowSize{Rows: 24, Cols: 80}, size)
}

func TestWindowSizeRejectsDegenerate(t *testing.T) {
	ptm, pts := openTestPty(t)
	require.NoError(t, pty.Setsize(ptm, &pty.Winsize{}))

	_, err := NewSession(pts).WindowSize()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "query window size", cfgErr.Op)
}
