package markup

import (
	"testing"

	"github.com/go-test/deep"
)

func TestSyntaxValidate(t *testing.T) {
	for _, syn := range []Syntax{DefaultSyntax(), LegacySyntax()} {
		if err := syn.Validate(); err != nil {
			t.Fatalf("builtin syntax invalid: %v", err)
		}
	}

	var bad = []Syntax{
		{},
		{Layers: []Delimiter{{Kind: KindText, Token: "*"}}},
		{Layers: []Delimiter{{Kind: KindBold, Token: ""}}},
		{Layers: []Delimiter{{Kind: KindBold, Token: "*_"}}},
		{Layers: []Delimiter{{Kind: KindBold, Token: "§"}}},
		{Layers: []Delimiter{
			{Kind: KindBold, Token: "**"},
			{Kind: KindBold, Token: "*"},
		}},
	}

	for i, syn := range bad {
		if err := syn.Validate(); err == nil {
			t.Errorf("syntax %d: expected error", i)
		}
	}
}

func TestSyntaxDelimiter(t *testing.T) {
	d, ok := DefaultSyntax().Delimiter(KindUnderline)
	if !ok || d.Token != "__" {
		t.Fatalf("unexpected underline delimiter %#v", d)
	}

	d, ok = LegacySyntax().Delimiter(KindUnderline)
	if !ok || d.Token != "_" {
		t.Fatalf("unexpected legacy underline delimiter %#v", d)
	}

	if _, ok := DefaultSyntax().Delimiter(KindText); ok {
		t.Fatal("text has no delimiter")
	}
}

func TestSyntaxChars(t *testing.T) {
	if diff := deep.Equal(DefaultSyntax().Chars(), []byte("*_")); diff != nil {
		t.Error(diff)
	}
}

func TestStyleString(t *testing.T) {
	var tests = map[Style]string{
		Normal:                    "normal",
		Bold:                      "bold",
		Bold | Underline:          "bold|underline",
		Bold | Italic | Underline: "bold|italic|underline",
	}

	for style, expect := range tests {
		if got := style.String(); got != expect {
			t.Errorf("%d: expected %q, got %q", style, expect, got)
		}
	}
}
