// Package postmark renders and edits the inline emphasis markup of post
// content: **bold**, *italic* and __underline__.
package postmark

import (
	"io"

	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/diamondburned/cchat-postmark/internal/segments/inline"
	"github.com/diamondburned/cchat-postmark/internal/segments/renderer"
	"github.com/diamondburned/cchat/text"
)

type (
	Run    = markup.Run
	Runs   = markup.Runs
	Style  = markup.Style
	Syntax = markup.Syntax
)

const (
	Bold      = markup.Bold
	Italic    = markup.Italic
	Underline = markup.Underline
	Normal    = markup.Normal
)

// Toolbar tokens.
const (
	BoldToken      = "**"
	ItalicToken    = "*"
	UnderlineToken = "__"
)

// DefaultSyntax returns the syntax that the toolbar tokens are parsed with.
func DefaultSyntax() Syntax { return markup.DefaultSyntax() }

// LegacySyntax returns the single-underscore underline syntax.
func LegacySyntax() Syntax { return markup.LegacySyntax() }

// Parse parses the content into styled runs.
func Parse(content string) Runs {
	return markup.Parse(content)
}

// ParseSyntax parses the content into styled runs with the given syntax.
func ParseSyntax(content string, syn Syntax) Runs {
	return markup.ParseSyntax(content, syn)
}

// Rich parses the content into a cchat rich text.
func Rich(content string) text.Rich {
	return inline.Render(markup.Parse(content))
}

// HTML writes the content as an HTML paragraph.
func HTML(w io.Writer, content string) error {
	return renderer.HTML(w, content, markup.DefaultSyntax())
}

// InsertOrWrap inserts a toolbar token at the caret or wraps the selection
// with it. Offsets are in runes.
func InsertOrWrap(text string, start, end int, token string) string {
	return editor.InsertOrWrap(text, start, end, token)
}

// VisibleLength approximates the length of the content without its markers.
func VisibleLength(text string) int {
	return editor.VisibleLength(text, markup.DefaultSyntax())
}
