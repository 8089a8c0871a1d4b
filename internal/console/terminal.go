package console

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Terminal reports the current terminal geometry
type Terminal interface {
	Size() (cols, rows int, err error)
}

// StdoutTerminal reads the size of the terminal attached to stdout
type StdoutTerminal struct{}

// Size implements Terminal
func (StdoutTerminal) Size() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// FixedSize is a Terminal with known dimensions
type FixedSize struct {
	Cols int
	Rows int
}

// Size implements Terminal
func (f FixedSize) Size() (int, int, error) {
	return f.Cols, f.Rows, nil
}
