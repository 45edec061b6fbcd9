package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger writes the messages shown to the user when a file is rejected.
type Logger struct {
	stderr io.Writer
	red    colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Error(message string) {
	fmt.Fprintf(l.stderr, "%s %s\n", l.red("Error:"), message)
}
