package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/diamondburned/cchat-postmark/internal/config"
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/diamondburned/cchat-postmark/internal/preview"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] [text...]",
	Short: "Show the content styled in the terminal",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Bool("screen", false, "draw on a full screen until a key is pressed")
}

func runPreview(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	runs := markup.ParseSyntax(content, config.World.Syntax())

	if screen, _ := cmd.Flags().GetBool("screen"); screen {
		return previewScreen(runs)
	}

	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	if useColor(os.Stdout) {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	fmt.Fprintln(cmd.OutOrStdout(), preview.ANSI(runs, r))
	return nil
}

func previewScreen(runs markup.Runs) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	defer s.Fini()

	draw := func() {
		s.Clear()
		w, _ := s.Size()
		preview.Draw(s, 1, 1, w-2, runs)
		s.Show()
	}

	draw()

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
