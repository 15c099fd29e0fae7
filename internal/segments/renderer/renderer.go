// Package renderer exports parsed markup as a goldmark document and renders
// it to HTML.
package renderer

import (
	"io"
	"log"

	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark/ast"
	gmrenderer "github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

var renderers = map[ast.NodeKind]gmrenderer.NodeRendererFunc{}

// Register registers an HTML renderer to a node kind. It takes precedence over
// goldmark's own renderer for that kind.
func Register(kind ast.NodeKind, r gmrenderer.NodeRendererFunc) {
	log.Printf("Registering kind %v", kind)
	renderers[kind] = r
}

type registered struct{}

func (registered) RegisterFuncs(reg gmrenderer.NodeRendererFuncRegisterer) {
	for kind, fn := range renderers {
		reg.Register(kind, fn)
	}
}

// New creates a goldmark renderer that renders documents made by Document.
func New() gmrenderer.Renderer {
	return gmrenderer.NewRenderer(gmrenderer.WithNodeRenderers(
		util.Prioritized(html.NewRenderer(), 1000),
		util.Prioritized(registered{}, 500),
	))
}

// Document converts a markup tree into a goldmark document. Bold and italic
// become emphasis of level 2 and 1; the content is one paragraph.
func Document(nodes []markup.Node) *ast.Document {
	doc := ast.NewDocument()
	if len(nodes) == 0 {
		return doc
	}

	para := ast.NewParagraph()
	doc.AppendChild(doc, para)
	appendNodes(para, nodes)

	return doc
}

func appendNodes(parent ast.Node, nodes []markup.Node) {
	for _, n := range nodes {
		var child ast.Node

		switch n.Kind {
		case markup.KindBold:
			child = ast.NewEmphasis(2)
		case markup.KindItalic:
			child = ast.NewEmphasis(1)
		case markup.KindUnderline:
			child = NewUnderline()
		default:
			child = ast.NewString([]byte(n.Text))
		}

		parent.AppendChild(parent, child)
		appendNodes(child, n.Children)
	}
}

// HTML renders the content parsed with the given syntax as HTML.
func HTML(w io.Writer, content string, syn markup.Syntax) error {
	doc := Document(markup.Build(content, syn))

	if err := New().Render(w, []byte(content), doc); err != nil {
		return errors.Wrap(err, "failed to render HTML")
	}

	return nil
}
