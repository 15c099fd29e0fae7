package renderer

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

func init() {
	Register(KindUnderline, renderUnderline)
	Register(ast.KindString, renderString)
}

// KindUnderline is the node kind of Underline.
var KindUnderline = ast.NewNodeKind("Underline")

// Underline is an inline node whose children are underlined.
type Underline struct {
	ast.BaseInline
}

// NewUnderline creates an empty underline node.
func NewUnderline() *Underline {
	return &Underline{}
}

func (n *Underline) Kind() ast.NodeKind {
	return KindUnderline
}

func (n *Underline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

func renderUnderline(w util.BufWriter, _ []byte, n ast.Node, enter bool) (ast.WalkStatus, error) {
	if enter {
		w.WriteString("<u>")
	} else {
		w.WriteString("</u>")
	}
	return ast.WalkContinue, nil
}

// renderString writes strings escaped but otherwise verbatim. Markup has no
// escape syntax, so backslashes and entities are not interpreted.
func renderString(w util.BufWriter, _ []byte, n ast.Node, enter bool) (ast.WalkStatus, error) {
	if enter {
		w.Write(util.EscapeHTML(n.(*ast.String).Value))
	}
	return ast.WalkContinue, nil
}
