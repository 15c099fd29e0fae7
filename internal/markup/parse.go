// Package markup parses the inline emphasis markers of post content into
// styled runs.
//
// The markers are resolved in layers. Bold is matched over the whole content
// first; italic is then matched inside bold interiors and the text between bold
// matches; underline is matched last the same way. A marker that cannot be
// paired stays in the text as-is. Parsing never fails.
package markup

// Parser parses content with a fixed syntax. The zero value uses
// DefaultSyntax.
type Parser struct {
	Syntax Syntax
}

// NewParser creates a parser for the given syntax.
func NewParser(syn Syntax) Parser {
	return Parser{Syntax: syn}
}

// Parse parses the content into runs.
func (p Parser) Parse(content string) Runs {
	return Flatten(p.Tree(content))
}

// Tree parses the content into a node tree without flattening it.
func (p Parser) Tree(content string) []Node {
	syn := p.Syntax
	if len(syn.Layers) == 0 {
		syn = DefaultSyntax()
	}

	return Build(content, syn)
}

// Parse parses the content with the default syntax.
func Parse(content string) Runs {
	return Parser{}.Parse(content)
}

// ParseSyntax parses the content with the given syntax.
func ParseSyntax(content string, syn Syntax) Runs {
	return NewParser(syn).Parse(content)
}
