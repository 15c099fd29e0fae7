package main

import (
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/diamondburned/cchat-postmark/internal/config"
	"github.com/diamondburned/cchat-postmark/internal/toolbar"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "postmark",
	Short: "Render and edit inline post markup",
	Long: `postmark parses the **bold**, *italic* and __underline__ markers of post
content, and applies toolbar actions to it.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML settings file")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("legacy-underline", false, "parse underline as _text_")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("postmark: ")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the global registry from the defaults, the settings file
// and the flags that override it.
func loadConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()
	reg := config.New()

	if path, _ := flags.GetString("config"); path != "" {
		if err := reg.LoadFile(path); err != nil {
			return err
		}
	}

	cfg, err := reg.Configuration()
	if err != nil {
		return err
	}

	if legacy, _ := flags.GetBool("legacy-underline"); legacy {
		cfg[config.UnderlineDelimiterKey] = "_"
	}
	if color, _ := flags.GetString("color"); color != "" {
		cfg[config.ColorKey] = color
	}

	if err := reg.SetConfiguration(cfg); err != nil {
		return err
	}

	config.World = reg

	for _, act := range toolbar.Default.Mismatches(reg.Syntax()) {
		log.Printf("warning: the %s action inserts %q, which this syntax does not read as %s",
			act.Name, act.Token, act.Name)
	}

	return nil
}

// readContent returns the joined arguments, or standard input if there are
// none.
func readContent(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := ioutil.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}

	return strings.TrimSuffix(string(b), "\n"), nil
}

// useColor resolves the color setting against the given file.
func useColor(f *os.File) bool {
	switch config.World.Color() {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
