package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected KeyEvent
		ok       bool
	}{
		{
			name:     "printable rune",
			input:    []byte{'q'},
			expected: KeyEvent{Rune: 'q', Action: ActionRune},
			ok:       true,
		},
		{
			name:     "digit rune",
			input:    []byte{'3'},
			expected: KeyEvent{Rune: '3', Action: ActionRune},
			ok:       true,
		},
		{
			name:     "ctrl-c quits",
			input:    []byte{0x03},
			expected: KeyEvent{Action: ActionQuit},
			ok:       true,
		},
		{
			name:     "bare escape quits",
			input:    []byte{0x1b},
			expected: KeyEvent{Action: ActionQuit},
			ok:       true,
		},
		{
			name:     "right arrow advances day",
			input:    []byte{0x1b, '[', 'C'},
			expected: KeyEvent{Action: ActionNextDay},
			ok:       true,
		},
		{
			name:     "left arrow rewinds day",
			input:    []byte{0x1b, '[', 'D'},
			expected: KeyEvent{Action: ActionPrevDay},
			ok:       true,
		},
		{
			name:  "unknown escape sequence dropped",
			input: []byte{0x1b, '[', 'Z'},
			ok:    false,
		},
		{
			name: "empty read dropped",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := decodeKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, event)
		})
	}
}
