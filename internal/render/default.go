package render

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultRenderer buffers cursor addressed writes and flushes them to the
// terminal in one go. Raw mode is left to the keyboard reader.
type DefaultRenderer struct {
	Out io.Writer

	buffer strings.Builder
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	_, err := io.WriteString(r.out(), strings.Join([]string{
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	}, ""))
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := io.WriteString(r.out(), strings.Join([]string{
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	}, ""))
	return err
}

// Size falls back to 80x24 when stdout is not a terminal.
func (r *DefaultRenderer) Size() (int, int) {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return 80, 24
	}
	return columns, rows
}

func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[K")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.out(), r.buffer.String())
	r.buffer.Reset()
	return err
}
