package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Writer prints alerts as text, colored when the target is a terminal.
type Writer struct {
	out   io.Writer
	color bool
}

// NewWriter creates a writer for out. Color is disabled by noColor, by the
// NO_COLOR environment variable, or when out is not a terminal.
func NewWriter(out io.Writer, noColor bool) *Writer {
	return &Writer{out: out, color: useColor(out, noColor)}
}

func useColor(out io.Writer, noColor bool) bool {
	return !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(out)
}

// Write prints the alert and its indented details. A nil alert is ignored.
func (w *Writer) Write(a *Alert) error {
	if a == nil {
		return nil
	}
	line := a.String()
	if w.color {
		if c := a.Level.Color(); c != "" {
			line = c + line + resetColor
		}
	}
	if _, err := fmt.Fprintln(w.out, line); err != nil {
		return err
	}
	for _, d := range a.Details {
		if _, err := fmt.Fprintf(w.out, "   %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
