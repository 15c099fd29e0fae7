package preview

import (
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Style converts markup style flags to a tcell style.
func Style(s markup.Style) tcell.Style {
	return tcell.StyleDefault.
		Bold(s.Has(markup.Bold)).
		Italic(s.Has(markup.Italic)).
		Underline(s.Has(markup.Underline))
}

// Draw draws the runs starting at x, y and wraps them at width cells. A width
// of zero or less never wraps. Line breaks start a new row. It returns the
// number of rows drawn.
func Draw(screen tcell.Screen, x, y, width int, runs markup.Runs) (rows int) {
	if len(runs) == 0 {
		return 0
	}

	var col, row int

	for _, run := range runs {
		style := Style(run.Style)

		for _, r := range run.Text {
			if r == '\n' {
				col = 0
				row++
				continue
			}

			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}

			if width > 0 && col > 0 && col+w > width {
				col = 0
				row++
			}

			screen.SetContent(x+col, y+row, r, nil, style)
			col += w
		}
	}

	return row + 1
}
