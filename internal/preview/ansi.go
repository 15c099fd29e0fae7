// Package preview shows parsed markup in a terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/diamondburned/cchat-postmark/internal/markup"
)

// ANSI renders the runs with terminal escape sequences. A nil renderer uses
// lipgloss' default renderer, which drops styling when the output is not a
// terminal.
func ANSI(runs markup.Runs, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var b strings.Builder

	for _, run := range runs {
		if run.Style == markup.Normal {
			b.WriteString(run.Text)
			continue
		}

		style := lipglossStyle(r, run.Style)

		// lipgloss pads multi-line strings into a block, so style each line on
		// its own.
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}

	return b.String()
}

func lipglossStyle(r *lipgloss.Renderer, s markup.Style) lipgloss.Style {
	return r.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Bold(s.Has(markup.Bold)).
		Italic(s.Has(markup.Italic)).
		Underline(s.Has(markup.Underline))
}
