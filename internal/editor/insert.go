// Package editor produces markup from toolbar actions on an editing buffer.
//
// Offsets are rune indices into the text. Nothing here checks that the
// inserted markers balance or that the parser will recognize them.
package editor

import "unicode/utf8"

// InsertOrWrap inserts the token twice at a caret (start == end), or wraps the
// selected text with the token on both sides. Offsets outside the text are
// clamped, and reversed offsets are swapped.
func InsertOrWrap(text string, start, end int, token string) string {
	return Wrap(text, start, end, token).Text
}

// Edit is the outcome of a toolbar action on a text.
type Edit struct {
	Text string
	// Start and End locate the original selection inside Text, between the
	// inserted tokens.
	Start, End int
}

// Wrap is InsertOrWrap that also reports where the original selection ended
// up.
func Wrap(text string, start, end int, token string) Edit {
	runes := []rune(text)
	start, end = clampSelection(len(runes), start, end)

	head := string(runes[:start])
	body := string(runes[start:end])
	tail := string(runes[end:])

	// A caret has an empty body, so this inserts the token twice.
	n := utf8.RuneCountInString(token)

	return Edit{
		Text:  head + token + body + token + tail,
		Start: start + n,
		End:   end + n,
	}
}

func clampSelection(length, start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	return clamp(start, 0, length), clamp(end, 0, length)
}

func clamp(v, min, max int) int {
	switch {
	case v < min:
		return min
	case v > max:
		return max
	default:
		return v
	}
}
