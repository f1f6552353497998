// Package msg prints colored, leveled terminal output.
package msg

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func Info(format string, a ...any) {
	fmt.Printf("%s: %s\n", color.HiGreenString("info"), fmt.Sprintf(format, a...))
}

func Warn(format string, a ...any) {
	fmt.Printf("%s: %s\n", color.YellowString("warn"), fmt.Sprintf(format, a...))
}

func Error(format string, a ...any) {
	fmt.Printf("%s: %s\n", color.HiRedString("error"), fmt.Sprintf(format, a...))
}

func Fatal(format string, a ...any) {
	fmt.Printf("%s: %s\n", color.RedString("fatal"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

// IndentWriter prefixes every line written through it, used to set
// subprocess output apart from cubekit's own.
type IndentWriter struct {
	Indent    string
	W         io.Writer
	didIndent bool
}

func (w *IndentWriter) Write(p []byte) (n int, err error) {
	start := 0
	for i, c := range p {
		if !w.didIndent {
			w.W.Write([]byte(w.Indent))
			w.didIndent = true
		}
		if c == '\n' || c == '\r' {
			w.W.Write(p[start : i+1])
			start = i + 1
			w.didIndent = false
		}
	}
	if start < len(p) {
		w.W.Write(p[start:])
	}
	return len(p), nil
}
