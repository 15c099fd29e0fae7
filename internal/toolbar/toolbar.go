// Package toolbar holds the editing toolbar's style actions.
package toolbar

import (
	"fmt"
	"strings"

	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/diamondburned/cchat-postmark/internal/markup"
)

// Action is a toolbar button that wraps the selection with a token.
type Action struct {
	Name  string
	Desc  string
	Kind  markup.Kind
	Token string
}

type Actions []Action

// Default is the toolbar. Its tokens match markup.DefaultSyntax.
var Default = Actions{
	{
		Name:  "bold",
		Desc:  "Wrap the selection in bold markers",
		Kind:  markup.KindBold,
		Token: "**",
	},
	{
		Name:  "italic",
		Desc:  "Wrap the selection in italic markers",
		Kind:  markup.KindItalic,
		Token: "*",
	},
	{
		Name:  "underline",
		Desc:  "Wrap the selection in underline markers",
		Kind:  markup.KindUnderline,
		Token: "__",
	},
}

// Token returns the token of the action for the given kind.
func (acts Actions) Token(kind markup.Kind) (string, bool) {
	for _, act := range acts {
		if act.Kind == kind {
			return act.Token, true
		}
	}
	return "", false
}

// FindExact finds the exact action. It returns a pointer to the action
// directly in the slice if found. If not, nil is returned.
func (acts Actions) FindExact(name string) *Action {
	for i, act := range acts {
		if act.Name == name {
			return &acts[i]
		}
	}
	return nil
}

// Find finds actions with the given name prefix. The searching is case
// insensitive.
func (acts Actions) Find(prefix string) []Action {
	prefix = strings.ToLower(prefix)

	var found []Action

	for _, act := range acts {
		if strings.HasPrefix(strings.ToLower(act.Name), prefix) {
			found = append(found, act)
		}
	}

	return found
}

// Run applies the named action to the editor.
func (acts Actions) Run(ed *editor.Editor, name string) error {
	act := acts.FindExact(name)
	if act == nil {
		return fmt.Errorf("unknown action %q", name)
	}

	ed.Apply(act.Token)
	return nil
}

// Mismatches returns the actions whose token the syntax does not parse as the
// action's style.
func (acts Actions) Mismatches(syn markup.Syntax) []Action {
	var mismatched []Action

	for _, act := range acts {
		d, ok := syn.Delimiter(act.Kind)
		if !ok || d.Token != act.Token {
			mismatched = append(mismatched, act)
		}
	}

	return mismatched
}
