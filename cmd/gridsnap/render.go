package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnap/internal/core"
)

var (
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	arrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatResult renders one snapped point. Plain output is "x,y" so it can be
// piped back into another gridsnap.
func formatResult(in, out core.Point, styled bool) string {
	if !styled {
		return fmt.Sprintf("%d,%d", out.X, out.Y)
	}
	return inputStyle.Render(in.String()) + " " + arrowStyle.Render("->") + " " + resultStyle.Render(out.String())
}

// header renders a table header, styled only on a terminal.
func header(s string, styled bool) string {
	if !styled {
		return s
	}
	return headerStyle.Render(s)
}
