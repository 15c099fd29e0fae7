package segutil

import (
	"github.com/diamondburned/cchat/text"
)

// helper global functions

// Write appends the content to the rich text and returns its byte bounds.
func Write(rich *text.Rich, content string) (start, end int) {
	start = len(rich.Content)
	end = len(rich.Content) + len(content)
	rich.Content += content
	return
}

func Add(r *text.Rich, seg ...text.Segment) {
	r.Segments = append(r.Segments, seg...)
}
