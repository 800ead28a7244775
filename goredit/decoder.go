package goredit

import (
	"fmt"
	"io"
)

// Event is a logical key event produced by the decoder.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventMoveUp
	EventMoveDown
	EventMoveRight
	EventMoveLeft
)

// decoderState tracks progress through an escape sequence. The state lives
// on the decoder because a sequence may straddle multiple reads.
type decoderState int

const (
	stateIdle decoderState = iota
	stateSawEscape  // consumed ESC, expecting '['
	stateSawBracket // consumed ESC '[', expecting a final byte
)

// ctrl masks a character down to its control-chord byte, e.g. ctrl('q') is
// the 0x11 emitted by Ctrl-Q.
func ctrl(c byte) byte {
	return c & 0x1f
}

const keyEscape = 0x1b

// Decoder turns a raw byte stream into logical key events. Any io.Reader
// works as the source; the real one is a terminal in raw mode whose reads
// time out after 100ms with no data.

type Decoder struct {
	src   io.Reader
	state decoderState
	buf   [1]byte
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{src: src}
}

// readByte attempts to read one byte. ok is false when the read timed out
// with no data, which under VMIN=0/VTIME surfaces as a zero-byte read that
// os.File reports as io.EOF. That is the common idle case, not an error.
func (d *Decoder) readByte() (b byte, ok bool, err error) {
	n, err := d.src.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err == nil || err == io.EOF {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("read key: %w", err)
}

// Decode blocks until the stream yields exactly one event, retrying
// timed-out reads without touching decoder state. Bytes that produce no
// event (printable input, malformed or unrecognized sequences) are consumed
// silently and the read loop continues.
func (d *Decoder) Decode() (Event, error) {
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return EventNone, err
		}
		if !ok {
			continue
		}
		if ev := d.feed(b); ev != EventNone {
			return ev, nil
		}
	}
}

// feed advances the state machine by one byte and returns the event it
// produced, if any.
func (d *Decoder) feed(b byte) Event {
	// Quit preempts the state machine: Ctrl-Q mid-sequence aborts the
	// sequence and quits.
	if b == ctrl('q') {
		d.state = stateIdle
		return EventQuit
	}

	switch d.state {
	case stateIdle:
		if b == keyEscape {
			d.state = stateSawEscape
		}
		return EventNone

	case stateSawEscape:
		if b == '[' {
			d.state = stateSawBracket
		} else {
			// Malformed sequence, drop it
			d.state = stateIdle
		}
		return EventNone

	case stateSawBracket:
		d.state = stateIdle
		switch b {
		case 'A':
			return EventMoveUp
		case 'B':
			return EventMoveDown
		case 'C':
			return EventMoveRight
		case 'D':
			return EventMoveLeft
		}
		return EventNone
	}
	return EventNone
}
