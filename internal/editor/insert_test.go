package editor

import (
	"testing"

	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/go-test/deep"
)

type inserttest struct {
	text       string
	start, end int
	token      string
	out        string
}

func TestInsertOrWrap(t *testing.T) {
	var tests = []inserttest{
		{"hello world", 0, 5, "**", "**hello** world"},
		{"hello", 5, 5, "*", "hello**"},
		{"hello", 0, 0, "__", "____hello"},
		{"hello", 1, 4, "__", "h__ell__o"},
		{"", 0, 0, "**", "****"},
		{"héllo wörld", 6, 11, "*", "héllo *wörld*"},
		// Out of range and reversed offsets are clamped and swapped.
		{"abc", -3, 99, "*", "*abc*"},
		{"abc", 2, 1, "**", "a**b**c"},
	}

	for _, test := range tests {
		got := InsertOrWrap(test.text, test.start, test.end, test.token)
		if got != test.out {
			t.Errorf("InsertOrWrap(%q, %d, %d, %q) = %q, expected %q",
				test.text, test.start, test.end, test.token, got, test.out)
		}
	}
}

func TestWrap(t *testing.T) {
	edit := Wrap("hello world", 6, 11, "**")

	if diff := deep.Equal(edit, Edit{"hello **world**", 8, 13}); diff != nil {
		t.Error(diff)
	}
}

func TestInsertOrWrapDoesNotBalance(t *testing.T) {
	text := "hello"
	text = InsertOrWrap(text, 0, 5, "*")
	text = InsertOrWrap(text, 0, 7, "*")

	if text != "**hello**" {
		t.Fatalf("unexpected text %q", text)
	}

	// Two italic actions read back as bold.
	runs := markup.Parse(text)
	if len(runs) != 1 || runs[0].Style != markup.Bold {
		t.Fatalf("unexpected runs %#v", runs)
	}
}

// The underline action inserts a double underscore. The default syntax reads
// it back as underline; the legacy single-underscore syntax leaves one
// underscore of each token in the text.
func TestUnderlineTokenConvention(t *testing.T) {
	text := InsertOrWrap("under", 0, 5, "__")

	runs := markup.Parse(text)
	if diff := deep.Equal(runs, markup.Runs{
		{Text: "under", Style: markup.Underline, Raw: "__under__"},
	}); diff != nil {
		t.Errorf("default syntax: %v", diff)
	}

	runs = markup.ParseSyntax(text, markup.LegacySyntax())
	if diff := deep.Equal(runs, markup.Runs{
		{Text: "_under_", Style: markup.Underline, Raw: "__under__"},
	}); diff != nil {
		t.Errorf("legacy syntax: %v", diff)
	}
}

func TestInsertedMarkupParses(t *testing.T) {
	var syn = markup.DefaultSyntax()

	for _, d := range syn.Layers {
		text := InsertOrWrap("say hello there", 4, 9, d.Token)
		runs := markup.Parse(text)

		if len(runs) != 3 {
			t.Fatalf("%v: unexpected runs %#v", d.Kind, runs)
		}
		if runs[1].Text != "hello" || runs[1].Style != d.Kind.Style() {
			t.Errorf("%v: unexpected middle run %#v", d.Kind, runs[1])
		}
	}
}
