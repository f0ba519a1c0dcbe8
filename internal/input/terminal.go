package input

import "github.com/lawnchairsociety/gridmaze/internal/maze"

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// Decoder splits a raw-mode terminal byte stream into intents. An
// escape sequence cut in half by a read boundary is held back until
// the next Feed completes it.
type Decoder struct {
	pending []byte
}

// Feed decodes the next chunk read from the terminal
func (d *Decoder) Feed(b []byte) []Intent {
	buf := append(d.pending, b...)
	d.pending = nil

	var out []Intent
	for i := 0; i < len(buf); {
		c := buf[i]

		if c == keyEsc {
			n, intent, complete := parseEscape(buf[i:])
			if !complete {
				d.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if intent.Action != None {
				out = append(out, intent)
			}
			i += n
			continue
		}

		switch c {
		case keyCtrlC, keyCtrlD:
			out = append(out, Intent{Action: Quit})
		default:
			if intent, err := ParseKey(rune(c)); err == nil {
				out = append(out, intent)
			}
		}
		i++
	}

	return out
}

// Pending reports whether a partial escape sequence is buffered
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// parseEscape decodes a CSI (ESC [) or SS3 (ESC O) sequence at the
// start of b. It returns the bytes consumed, or complete=false when b
// ends before the sequence does. Modifier parameters such as the
// "1;5" in ESC [ 1 ; 5 A are ignored.
func parseEscape(b []byte) (int, Intent, bool) {
	if len(b) < 2 {
		return 0, Intent{}, false
	}
	if b[1] != '[' && b[1] != 'O' {
		// A bare Esc press; drop it and decode what follows normally
		return 1, Intent{}, true
	}

	for j := 2; j < len(b); j++ {
		if c := b[j]; c >= 0x40 && c <= 0x7e {
			return j + 1, arrow(c), true
		}
	}
	return 0, Intent{}, false
}

func arrow(final byte) Intent {
	switch final {
	case 'A':
		return MoveIntent(maze.North)
	case 'B':
		return MoveIntent(maze.South)
	case 'C':
		return MoveIntent(maze.East)
	case 'D':
		return MoveIntent(maze.West)
	}
	return Intent{}
}
