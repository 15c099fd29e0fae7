package markup

import (
	"github.com/pkg/errors"
)

// Delimiter is a single row of the delimiter table.
type Delimiter struct {
	Kind  Kind
	Token string
	// MinLength is the minimum length of a whole match, delimiters included.
	MinLength int
}

// char returns the byte that the token is made of.
func (d Delimiter) char() byte {
	return d.Token[0]
}

func (d Delimiter) validate() error {
	if d.Kind == KindText {
		return errors.New("text is not a delimiter kind")
	}
	if d.Token == "" {
		return errors.Errorf("empty token for %v", d.Kind)
	}
	c := d.Token[0]
	if c >= 0x80 {
		return errors.Errorf("token %q for %v is not ASCII", d.Token, d.Kind)
	}
	for i := 1; i < len(d.Token); i++ {
		if d.Token[i] != c {
			return errors.Errorf("token %q for %v is not a single repeated byte", d.Token, d.Kind)
		}
	}
	return nil
}

// Syntax is the ordered delimiter table. The first layer is resolved over the
// whole content; every later layer is resolved inside the literal gaps and
// the match interiors of the layer before it.
type Syntax struct {
	Layers []Delimiter
}

// DefaultSyntax returns the delimiter table shared by the parser and the
// editing toolbar. Underline uses the double underscore on both sides.
func DefaultSyntax() Syntax {
	return Syntax{
		Layers: []Delimiter{
			{Kind: KindBold, Token: "**", MinLength: 4},
			{Kind: KindItalic, Token: "*", MinLength: 2},
			{Kind: KindUnderline, Token: "__", MinLength: 4},
		},
	}
}

// LegacySyntax returns the delimiter table of the first mobile client, which
// recognizes underline with a single underscore. Text produced by the
// toolbar's "__" underline action is not underlined under this syntax.
func LegacySyntax() Syntax {
	return Syntax{
		Layers: []Delimiter{
			{Kind: KindBold, Token: "**", MinLength: 4},
			{Kind: KindItalic, Token: "*", MinLength: 2},
			{Kind: KindUnderline, Token: "_", MinLength: 4},
		},
	}
}

// Delimiter returns the layer for the given kind.
func (syn Syntax) Delimiter(kind Kind) (Delimiter, bool) {
	for _, d := range syn.Layers {
		if d.Kind == kind {
			return d, true
		}
	}
	return Delimiter{}, false
}

// Chars returns every distinct byte used by the delimiter tokens, in layer
// order.
func (syn Syntax) Chars() []byte {
	var chars = make([]byte, 0, len(syn.Layers))

Outer:
	for _, d := range syn.Layers {
		for _, c := range chars {
			if c == d.char() {
				continue Outer
			}
		}
		chars = append(chars, d.char())
	}

	return chars
}

// Validate checks that every layer is usable by the scanner.
func (syn Syntax) Validate() error {
	if len(syn.Layers) == 0 {
		return errors.New("syntax has no layers")
	}

	var seen = map[Kind]bool{}
	for i, d := range syn.Layers {
		if err := d.validate(); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
		if seen[d.Kind] {
			return errors.Errorf("layer %d: duplicate kind %v", i, d.Kind)
		}
		seen[d.Kind] = true
	}

	return nil
}
