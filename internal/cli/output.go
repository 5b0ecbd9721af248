package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

type outputStyles struct {
	header lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
}

// newOutputStyles returns colored styles on a TTY and plain ones otherwise.
func newOutputStyles(w io.Writer) outputStyles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return outputStyles{header: plain, ok: plain, fail: plain}
	}
	return outputStyles{
		header: lipgloss.NewStyle().Bold(true).Underline(true),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// defaultIsTerminal inspects w for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
