package toolbar

import (
	"testing"

	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/go-test/deep"
)

func TestToken(t *testing.T) {
	var tests = map[markup.Kind]string{
		markup.KindBold:      "**",
		markup.KindItalic:    "*",
		markup.KindUnderline: "__",
	}

	for kind, expect := range tests {
		token, ok := Default.Token(kind)
		if !ok || token != expect {
			t.Errorf("%v: expected %q, got %q", kind, expect, token)
		}
	}

	if _, ok := Default.Token(markup.KindText); ok {
		t.Error("text has no token")
	}
}

func TestFind(t *testing.T) {
	if act := Default.FindExact("italic"); act == nil || act.Token != "*" {
		t.Fatalf("unexpected action %#v", act)
	}
	if act := Default.FindExact("Italic"); act != nil {
		t.Fatalf("FindExact should be case sensitive, got %#v", act)
	}

	found := Default.Find("UN")
	if len(found) != 1 || found[0].Name != "underline" {
		t.Fatalf("unexpected actions %#v", found)
	}
}

func TestRun(t *testing.T) {
	ed := editor.New("make this loud")
	if err := ed.Select(10, 14); err != nil {
		t.Fatal(err)
	}

	if err := Default.Run(ed, "bold"); err != nil {
		t.Fatal(err)
	}
	if ed.Text() != "make this **loud**" {
		t.Fatalf("unexpected text %q", ed.Text())
	}

	if err := Default.Run(ed, "strike"); err == nil {
		t.Fatal("expected an unknown action error")
	}
}

func TestMismatches(t *testing.T) {
	if m := Default.Mismatches(markup.DefaultSyntax()); len(m) != 0 {
		t.Fatalf("default toolbar should match the default syntax, got %#v", m)
	}

	m := Default.Mismatches(markup.LegacySyntax())
	if len(m) != 1 || m[0].Kind != markup.KindUnderline {
		t.Fatalf("expected only underline to mismatch, got %#v", m)
	}
}

func TestComplete(t *testing.T) {
	entries := Default.Complete([]string{"hi", "/l"}, 1)

	var raws []string
	for _, entry := range entries {
		raws = append(raws, entry.Raw)
	}

	if diff := deep.Equal(raws, []string{"/bold", "/italic", "/underline"}); diff != nil {
		t.Error(diff)
	}

	if entries[0].Secondary.Content != Default[0].Desc {
		t.Errorf("unexpected secondary text %q", entries[0].Secondary.Content)
	}

	var none = [][]string{
		{"bold"},
		{"/zzz"},
		{""},
	}

	for _, words := range none {
		if entries := Default.Complete(words, 0); len(entries) != 0 {
			t.Errorf("%q: expected no entries, got %d", words, len(entries))
		}
	}

	if entries := Default.Complete([]string{"/b"}, 3); entries != nil {
		t.Error("expected nil for an out of range index")
	}
}
