package editor

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestBudget(t *testing.T) {
	var b Budget

	if n := b.Remaining("**hi**"); n != DefaultMaxLength-2 {
		t.Fatalf("unexpected remaining %d", n)
	}

	if err := b.Check(strings.Repeat("a", DefaultMaxLength)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Delimiters do not count against the budget.
	if err := b.Check("**" + strings.Repeat("a", DefaultMaxLength) + "**"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := b.Check(strings.Repeat("a", DefaultMaxLength+2))
	if errors.Cause(err) != ErrTooLong {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "2 characters over the limit of 280") {
		t.Fatalf("unexpected error message %q", err)
	}
}

func TestBudgetLabel(t *testing.T) {
	var b = Budget{Max: 5000}

	var tests = map[string]string{
		"":                        "5,000 characters left",
		strings.Repeat("a", 4999): "1 character left",
		strings.Repeat("a", 5000): "0 characters left",
		strings.Repeat("a", 6500): "1,500 characters over",
	}

	for text, expect := range tests {
		if got := b.Label(text); got != expect {
			t.Errorf("Label(%d runes) = %q, expected %q", len(text), got, expect)
		}
	}
}
