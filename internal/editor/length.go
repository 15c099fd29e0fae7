package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/mattn/go-runewidth"
)

// Strip removes every delimiter byte of the syntax from the text, paired or
// not. It approximates what a reader sees; it is not the parser's output.
func Strip(text string, syn markup.Syntax) string {
	chars := string(syn.Chars())

	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.IndexByte(chars, byte(r)) >= 0 {
			return -1
		}
		return r
	}, text)
}

// VisibleLength counts the runes left after stripping delimiters.
func VisibleLength(text string, syn markup.Syntax) int {
	return utf8.RuneCountInString(Strip(text, syn))
}

// DisplayWidth is VisibleLength in terminal cells.
func DisplayWidth(text string, syn markup.Syntax) int {
	return runewidth.StringWidth(Strip(text, syn))
}
