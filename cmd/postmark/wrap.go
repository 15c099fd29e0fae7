package main

import (
	"fmt"
	"strings"

	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/diamondburned/cchat-postmark/internal/toolbar"
	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [flags] [text...]",
	Short: "Apply a toolbar action to a selection of the content",
	Long: `Wrap inserts the action's token twice at a caret (--start equal to --end), or
wraps the selected runes with it.`,
	RunE: runWrap,
}

func init() {
	wrapCmd.Flags().String("action", "bold", "toolbar action (bold|italic|underline)")
	wrapCmd.Flags().Int("start", 0, "selection start in runes")
	wrapCmd.Flags().Int("end", -1, "selection end in runes, or the end of the text if negative")
}

func runWrap(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("action")
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")

	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	ed := editor.New(content)
	if end < 0 {
		end, _ = ed.Selection()
	}

	if err := ed.Select(start, end); err != nil {
		return err
	}

	if err := toolbar.Default.Run(ed, name); err != nil {
		var names []string
		for _, act := range toolbar.Default.Find("") {
			names = append(names, act.Name)
		}
		return fmt.Errorf("%v, expected one of %s", err, strings.Join(names, ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), ed.Text())
	return nil
}
