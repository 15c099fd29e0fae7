package markup

import "strings"

// Style is a set of inline style flags.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Underline

	Normal Style = 0
)

var styleNames = []struct {
	style Style
	name  string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
}

// Has returns true if all flags in s2 are set in s.
func (s Style) Has(s2 Style) bool {
	return s&s2 == s2
}

func (s Style) String() string {
	if s == Normal {
		return "normal"
	}

	var names = make([]string, 0, len(styleNames))
	for _, n := range styleNames {
		if s.Has(n.style) {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, "|")
}

// Kind is the kind of a markup node.
type Kind uint8

const (
	KindText Kind = iota
	KindBold
	KindItalic
	KindUnderline
)

// Style returns the style flag that a wrapper of this kind applies to its
// children. Text nodes apply nothing.
func (k Kind) Style() Style {
	switch k {
	case KindBold:
		return Bold
	case KindItalic:
		return Italic
	case KindUnderline:
		return Underline
	default:
		return Normal
	}
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
