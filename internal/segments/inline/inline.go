package inline

import (
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/diamondburned/cchat-postmark/internal/segments/segutil"
	"github.com/diamondburned/cchat/text"
	"github.com/diamondburned/cchat/utils/empty"
)

type Attribute text.Attribute

var _ text.Attributor = (*Attribute)(nil)

func (attr Attribute) Attribute() text.Attribute {
	return text.Attribute(attr)
}

// Render renders the runs into a rich text. Every styled run gets its own
// segment; unstyled runs are plain content.
func Render(runs markup.Runs) text.Rich {
	var rich text.Rich
	for _, run := range runs {
		Write(&rich, run.Text, run.Style)
	}
	return rich
}

// Write appends the content with the given style.
func Write(rich *text.Rich, content string, style markup.Style) {
	start, end := segutil.Write(rich, content)

	if style != markup.Normal && start != end {
		segutil.Add(rich, NewSegmentFromStyle(start, end, style))
	}
}

type Segment struct {
	empty.TextSegment
	start, end int
	attributes Attribute
}

// NewSegmentFromStyle creates a new rich text segment from the start, end
// indices and the markup style flags.
func NewSegmentFromStyle(start, end int, style markup.Style) Segment {
	var seg = Segment{
		start: start,
		end:   end,
	}

	if style.Has(markup.Bold) {
		seg.attributes |= Attribute(text.AttributeBold)
	}
	if style.Has(markup.Italic) {
		seg.attributes |= Attribute(text.AttributeItalics)
	}
	if style.Has(markup.Underline) {
		seg.attributes |= Attribute(text.AttributeUnderline)
	}

	return seg
}

func NewSegment(start, end int, attrs ...text.Attribute) Segment {
	var attr = text.AttributeNormal
	for _, a := range attrs {
		attr |= a
	}
	return Segment{
		start:      start,
		end:        end,
		attributes: Attribute(attr),
	}
}

var _ text.Segment = (*Segment)(nil)

func (i Segment) Bounds() (start, end int) {
	return i.start, i.end
}

func (i Segment) AsAttributor() text.Attributor {
	return i.attributes
}
