package main

import (
	"fmt"

	"github.com/diamondburned/cchat-postmark/internal/config"
	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [flags] [text...]",
	Short: "Count the visible characters of the content",
	RunE:  runCount,
}

func init() {
	countCmd.Flags().Bool("strict", false, "fail if the content is over the budget")
}

func runCount(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	budget := config.World.Budget()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "length: %d\n", editor.VisibleLength(content, budget.Syntax))
	fmt.Fprintf(out, "width:  %d\n", editor.DisplayWidth(content, budget.Syntax))
	fmt.Fprintf(out, "budget: %s\n", budget.Label(content))

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		return budget.Check(content)
	}

	return nil
}
