package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/diamondburned/cchat-postmark/internal/config"
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [text...]",
	Short: "Print the styled runs of the content",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("tree", false, "print the node tree instead of runs")
}

type jsonRun struct {
	Text  string   `json:"text"`
	Style []string `json:"style"`
	Raw   string   `json:"raw"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return errors.Wrap(err, "failed to get format flag")
	}

	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	parser := markup.NewParser(config.World.Syntax())
	out := cmd.OutOrStdout()

	if tree, _ := cmd.Flags().GetBool("tree"); tree {
		printTree(out, parser.Tree(content), 0)
		return nil
	}

	runs := parser.Parse(content)

	switch format {
	case "pretty":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STYLE\tTEXT\tRAW")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%q\t%q\n", run.Style, run.Text, run.Raw)
		}
		return w.Flush()

	case "json":
		var jsonRuns = make([]jsonRun, len(runs))
		for i, run := range runs {
			jsonRuns[i] = jsonRun{
				Text:  run.Text,
				Style: styleNames(run.Style),
				Raw:   run.Raw,
			}
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonRuns)

	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func styleNames(s markup.Style) []string {
	var names = []string{}
	for _, kind := range []markup.Kind{markup.KindBold, markup.KindItalic, markup.KindUnderline} {
		if s.Has(kind.Style()) {
			names = append(names, kind.String())
		}
	}
	return names
}

func printTree(w io.Writer, nodes []markup.Node, level int) {
	for _, n := range nodes {
		indent := fmt.Sprintf("%*s", level*2, "")

		if n.IsLeaf() {
			fmt.Fprintf(w, "%s%q\n", indent, n.Text)
			continue
		}

		fmt.Fprintf(w, "%s%v %q\n", indent, n.Kind, n.Open)
		printTree(w, n.Children, level+1)
	}
}
