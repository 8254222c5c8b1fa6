// Package cli provides the Cobra command structure for mdspan.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/janek-w/mdspan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root mdspan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdspan",
		Short: "Live markdown span annotation engine",
		Long: `mdspan renders plain-text markdown as a styled span tree while the
underlying text stays fully editable as plain text.

The preview command shows the span tree in the terminal, including the
focused-line WYSIWYG illusion an editor host would present. The export
command converts the same source to HTML.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newPreviewCommand(flags))
	rootCmd.AddCommand(newExportCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
