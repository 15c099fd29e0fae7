package main

import (
	"github.com/diamondburned/cchat-postmark/internal/config"
	"github.com/diamondburned/cchat-postmark/internal/segments/renderer"
	"github.com/spf13/cobra"
)

var htmlCmd = &cobra.Command{
	Use:   "html [text...]",
	Short: "Render the content as an HTML paragraph",
	RunE:  runHTML,
}

func runHTML(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	return renderer.HTML(cmd.OutOrStdout(), content, config.World.Syntax())
}
