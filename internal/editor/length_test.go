package editor

import (
	"testing"

	"github.com/diamondburned/cchat-postmark/internal/markup"
)

func TestVisibleLength(t *testing.T) {
	var tests = []struct {
		text   string
		length int
	}{
		{"", 0},
		{"hello", 5},
		{"**hello**", 5},
		{"*a* __b__ **c**", 5},
		{"stray * and _", 11},
		{"****", 0},
		{"héllo", 5},
	}

	for _, test := range tests {
		got := VisibleLength(test.text, markup.DefaultSyntax())
		if got != test.length {
			t.Errorf("VisibleLength(%q) = %d, expected %d", test.text, got, test.length)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	if w := DisplayWidth("**日本**", markup.DefaultSyntax()); w != 4 {
		t.Fatalf("expected width 4, got %d", w)
	}
}
