package markup

import "strings"

// Node is the intermediate tree form of parsed content. A node is either a
// text leaf or a wrapper whose children are styled by its kind.
type Node struct {
	Kind Kind
	// Text is the literal content of a leaf.
	Text string
	// Open and Close are the delimiters consumed by a wrapper.
	Open, Close string
	Children    []Node
}

// Leaf creates a text node.
func Leaf(text string) Node {
	return Node{Kind: KindText, Text: text}
}

// IsLeaf returns true if the node is a text leaf.
func (n Node) IsLeaf() bool {
	return n.Kind == KindText
}

// Source returns the exact span of the content that the node was built from.
func (n Node) Source() string {
	if n.IsLeaf() {
		return n.Text
	}

	var b strings.Builder
	b.WriteString(n.Open)
	for _, child := range n.Children {
		b.WriteString(child.Source())
	}
	b.WriteString(n.Close)

	return b.String()
}

// Build resolves the content into a tree using the layers of the given
// syntax, outermost layer first.
func Build(content string, syn Syntax) []Node {
	return build(content, syn.Layers)
}

func build(content string, layers []Delimiter) []Node {
	if content == "" {
		return nil
	}
	if len(layers) == 0 {
		return []Node{Leaf(content)}
	}

	var (
		delim = layers[0]
		inner = layers[1:]
		nodes []Node
	)

	for _, span := range scan(content, delim) {
		if !span.match {
			nodes = append(nodes, build(span.text, inner)...)
			continue
		}

		open := len(delim.Token)
		interior := span.text[open : len(span.text)-open]

		nodes = append(nodes, Node{
			Kind:     delim.Kind,
			Open:     delim.Token,
			Close:    delim.Token,
			Children: build(interior, inner),
		})
	}

	return nodes
}

type span struct {
	text  string
	match bool
}

// scan splits the content into literal gaps and delimiter matches, in order.
// Empty gaps are omitted.
func scan(content string, delim Delimiter) []span {
	var (
		spans []span
		start int // start of the current literal gap
	)

	for i := 0; i < len(content); {
		if !strings.HasPrefix(content[i:], delim.Token) {
			i++
			continue
		}

		end, ok := closeMatch(content, i, delim)
		if !ok {
			i++
			continue
		}

		if start < i {
			spans = append(spans, span{text: content[start:i]})
		}
		spans = append(spans, span{text: content[i:end], match: true})

		i = end
		start = end
	}

	if start < len(content) {
		spans = append(spans, span{text: content[start:]})
	}

	return spans
}

// closeMatch finds the end of a match opened at i. The first closing token
// that leaves a valid interior wins. If that token starts a longer run of the
// delimiter byte, the match extends to the end of the run.
func closeMatch(content string, i int, delim Delimiter) (end int, ok bool) {
	var (
		c     = delim.char()
		size  = len(delim.Token)
		from  = i + size
		plain bool // interior so far has a byte other than c
	)

	for j := from; j < len(content); j++ {
		if content[j] == '\n' {
			return 0, false
		}

		if plain && strings.HasPrefix(content[j:], delim.Token) {
			run := j
			for run < len(content) && content[run] == c {
				run++
			}

			if run-i >= delim.MinLength {
				return run, true
			}
		}

		if content[j] != c {
			plain = true
		}
	}

	return 0, false
}
