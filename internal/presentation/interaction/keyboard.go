package interaction

import (
	"os"

	"golang.org/x/sys/unix"
)

// KeyAction classifies a key press into the intents the watch view acts
// on. Printable keys arrive as ActionRune with Rune set so the view can
// bind its own shortcuts (q, h/l, day ordinals).
type KeyAction int

const (
	ActionRune KeyAction = iota
	ActionQuit
	ActionPrevDay
	ActionNextDay
)

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Rune   rune
	Action KeyAction
}

// decodeKey turns a raw stdin chunk into a key event. Ctrl+C and a bare
// Esc both mean quit; the CSI arrow sequences map to day switching.
// Unrecognized escape sequences are dropped.
func decodeKey(buf []byte) (KeyEvent, bool) {
	if len(buf) == 0 {
		return KeyEvent{}, false
	}

	switch buf[0] {
	case 0x03:
		return KeyEvent{Action: ActionQuit}, true
	case 0x1b:
		if len(buf) == 1 {
			return KeyEvent{Action: ActionQuit}, true
		}
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'C':
				return KeyEvent{Action: ActionNextDay}, true
			case 'D':
				return KeyEvent{Action: ActionPrevDay}, true
			}
		}
		return KeyEvent{}, false
	}

	return KeyEvent{Rune: rune(buf[0]), Action: ActionRune}, true
}

// KeyboardReader owns the terminal raw mode for the watch session and
// decodes stdin into key events.
type KeyboardReader struct {
	oldState *unix.Termios
	events   chan KeyEvent
	done     chan struct{}
}

// NewKeyboardReader switches the terminal to raw mode and starts decoding
// stdin. Close restores the terminal.
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := &KeyboardReader{
		events: make(chan KeyEvent, 8),
		done:   make(chan struct{}),
	}

	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	go kr.readLoop()
	return kr, nil
}

// readLoop stops on the first stdin read error, which includes stdin
// closing at process shutdown.
func (kr *KeyboardReader) readLoop() {
	buf := make([]byte, 8)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}

		event, ok := decodeKey(buf[:n])
		if !ok {
			continue
		}

		select {
		case kr.events <- event:
		case <-kr.done:
			return
		}
	}
}

// Events returns the decoded key event channel.
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.events
}

// Close stops the reader and restores the terminal state.
func (kr *KeyboardReader) Close() error {
	close(kr.done)
	return kr.disableRawMode()
}
