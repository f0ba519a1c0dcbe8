package tty

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/ssh/terminal"
)

// ErrNotTerminal is returned when raw mode is requested on something
// that is not a terminal, such as a pipe.
var ErrNotTerminal = errors.New("not a terminal")

// MakeRaw switches fd to raw mode. The returned func restores the
// previous mode and is safe to call more than once.
func MakeRaw(fd int) (func() error, error) {
	if !terminal.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := terminal.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	var (
		once       sync.Once
		restoreErr error
	)
	return func() error {
		once.Do(func() {
			if err := terminal.Restore(fd, state); err != nil {
				restoreErr = fmt.Errorf("restore terminal: %w", err)
			}
		})
		return restoreErr
	}, nil
}
