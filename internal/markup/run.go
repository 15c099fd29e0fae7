package markup

import "strings"

// Run is a contiguous span of text with the styles active over it.
type Run struct {
	Text  string
	Style Style
	// Raw is the span of the source that produced this run, including any
	// delimiters consumed at its edges.
	Raw string
}

// Runs is a parsed document in source order.
type Runs []Run

// Text returns the displayed text, which is the source without the consumed
// delimiters.
func (runs Runs) Text() string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Raw reassembles the source that the runs were parsed from.
func (runs Runs) Raw() string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Raw)
	}
	return b.String()
}

// Flatten walks the tree top-down and turns every leaf into a run carrying the
// union of its ancestors' styles.
func Flatten(nodes []Node) Runs {
	var f flattener
	f.walk(nodes, Normal)
	return f.runs
}

type flattener struct {
	runs Runs
	// open holds delimiters waiting for the next leaf.
	open string
}

func (f *flattener) walk(nodes []Node, style Style) {
	for _, n := range nodes {
		if n.IsLeaf() {
			f.leaf(n.Text, style)
			continue
		}

		f.open += n.Open
		before := len(f.runs)

		f.walk(n.Children, style|n.Kind.Style())

		// Build never produces an empty wrapper, but a hand-made tree might.
		// Its delimiters then stay literal.
		if len(f.runs) == before {
			f.open = f.open[:len(f.open)-len(n.Open)]
			f.leaf(n.Open+n.Close, style)
			continue
		}

		f.runs[len(f.runs)-1].Raw += n.Close
	}
}

func (f *flattener) leaf(text string, style Style) {
	if text == "" {
		return
	}

	f.runs = append(f.runs, Run{
		Text:  text,
		Style: style,
		Raw:   f.open + text,
	})
	f.open = ""
}
