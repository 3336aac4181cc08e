package input

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after ESC.
// A lone ESC is reported as "escape".
func tryReadArrowKey(r io.Reader) string {
	b2, err := readByte(r)
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := readByte(r)
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// decodeKey turns the bytes of one key press into a binding code.
func decodeKey(r io.Reader) (string, error) {
	b, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch {
	case b == 0x1b:
		return tryReadArrowKey(r), nil
	case b == 3:
		return "ctrl_c", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 'A' && b <= 'Z':
		return string(b + 'a' - 'A'), nil
	case b > 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// ReadKey puts the terminal into raw mode, waits for one key press and
// returns it as a RawInput. Unrecognised keys come back with an empty Code.
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	code, err := decodeKey(os.Stdin)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot read stdin: %w", err)
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}
