package editor

import (
	"fmt"

	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// DefaultMaxLength is the post length limit of the posting form.
const DefaultMaxLength = 280

// ErrTooLong is returned when the visible content goes over the budget.
var ErrTooLong = errors.New("content is too long")

// Budget is a visible character budget. The zero value allows
// DefaultMaxLength characters under the default syntax.
type Budget struct {
	Max    int
	Syntax markup.Syntax
}

func (b Budget) max() int {
	if b.Max > 0 {
		return b.Max
	}
	return DefaultMaxLength
}

func (b Budget) syntax() markup.Syntax {
	if len(b.Syntax.Layers) == 0 {
		return markup.DefaultSyntax()
	}
	return b.Syntax
}

// Remaining returns the number of characters left. It is negative when the
// text is over the budget.
func (b Budget) Remaining(text string) int {
	return b.max() - VisibleLength(text, b.syntax())
}

// Check returns ErrTooLong wrapped with the overflow if the text does not fit.
func (b Budget) Check(text string) error {
	if over := -b.Remaining(text); over > 0 {
		return errors.Wrapf(ErrTooLong, "%s over the limit of %s",
			characters(over), humanize.Comma(int64(b.max())))
	}
	return nil
}

// Label renders the remaining budget for a character counter.
func (b Budget) Label(text string) string {
	n := b.Remaining(text)
	if n < 0 {
		return characters(-n) + " over"
	}
	return characters(n) + " left"
}

func characters(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%s characters", humanize.Comma(int64(n)))
}
