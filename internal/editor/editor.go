package editor

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidSelection is returned when a selection falls outside the text.
var ErrInvalidSelection = errors.New("invalid selection")

// Editor is an editing buffer with a selection. It has a single writer and is
// not safe for concurrent use.
type Editor struct {
	text       string
	length     int
	start, end int
}

// New creates an editor with the caret at the end of the text.
func New(text string) *Editor {
	e := &Editor{}
	e.SetText(text)
	return e
}

// Text returns the current content.
func (e *Editor) Text() string {
	return e.text
}

// Selection returns the current selection in runes.
func (e *Editor) Selection() (start, end int) {
	return e.start, e.end
}

// SetText replaces the content, moving the caret to the end.
func (e *Editor) SetText(text string) {
	e.text = text
	e.length = utf8.RuneCountInString(text)
	e.start = e.length
	e.end = e.length
}

// Select sets the selection. A selection outside the text is rejected and the
// previous selection is kept.
func (e *Editor) Select(start, end int) error {
	if start < 0 || start > end || end > e.length {
		return errors.Wrapf(ErrInvalidSelection,
			"%d..%d is not within 0..%d", start, end, e.length)
	}

	e.start = start
	e.end = end
	return nil
}

// Apply applies a toolbar token to the selection. After a caret insert, the
// caret sits between the two tokens. After a wrap, the wrapped text stays
// selected.
func (e *Editor) Apply(token string) {
	edit := Wrap(e.text, e.start, e.end, token)

	e.text = edit.Text
	e.length = utf8.RuneCountInString(edit.Text)
	e.start = edit.Start
	e.end = edit.End
}
