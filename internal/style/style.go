// Package style renders ANSI-colored terminal output. Colors are disabled
// when the destination is not a terminal or when NO_COLOR is set.
package style

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SGR codes used by the CLI.
const (
	codeReset  = "\x1b[0m"
	codeBold   = "\x1b[1m"
	codeRed    = "\x1b[31m"
	codeGreen  = "\x1b[32m"
	codeYellow = "\x1b[33m"
	codeCyan   = "\x1b[36m"
)

// Styler colorizes strings for a specific destination writer.
type Styler struct {
	enabled bool
}

// New returns a Styler for w. Coloring is enabled only when w is a terminal
// and the NO_COLOR convention is not in effect.
func New(w io.Writer) *Styler {
	return &Styler{enabled: shouldColor(w)}
}

func shouldColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (s *Styler) wrap(code, text string) string {
	if !s.enabled {
		return text
	}
	return code + text + codeReset
}

// Red renders error text.
func (s *Styler) Red(text string) string { return s.wrap(codeRed, text) }

// Green renders success text.
func (s *Styler) Green(text string) string { return s.wrap(codeGreen, text) }

// Yellow renders warning text.
func (s *Styler) Yellow(text string) string { return s.wrap(codeYellow, text) }

// Cyan renders accent text.
func (s *Styler) Cyan(text string) string { return s.wrap(codeCyan, text) }

// Bold renders emphasized text.
func (s *Styler) Bold(text string) string { return s.wrap(codeBold, text) }

// BoldGreen renders emphasized success text.
func (s *Styler) BoldGreen(text string) string { return s.wrap(codeBold+codeGreen, text) }

// BoldCyan renders emphasized accent text.
func (s *Styler) BoldCyan(text string) string { return s.wrap(codeBold+codeCyan, text) }

// Errorf writes a red-colored formatted line to w.
func Errorf(w io.Writer, format string, args ...any) {
	s := New(w)
	fmt.Fprintln(w, s.Red(fmt.Sprintf(format, args...)))
}

// Warnf writes a yellow-colored formatted line to w.
func Warnf(w io.Writer, format string, args ...any) {
	s := New(w)
	fmt.Fprintln(w, s.Yellow(fmt.Sprintf(format, args...)))
}
