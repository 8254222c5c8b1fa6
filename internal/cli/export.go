package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janek-w/mdspan/internal/logging"
	"github.com/janek-w/mdspan/pkg/export"
)

// outputFilePermissions is the file mode for exported documents.
const outputFilePermissions = 0644

func newExportCommand(_ *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a markdown file as HTML",
		Long: `Convert a markdown file to an HTML fragment. Conversion is done by a
full CommonMark parser, not the span engine, so exported documents get
proper block structure.

Examples:
  mdspan export README.md                  # HTML to stdout
  mdspan export README.md -o readme.html   # HTML to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, path, output string) error {
	logger := logging.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	html, err := export.HTML(data)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	logger.Debug("exported html",
		logging.FieldPath, path,
		logging.FieldBytes, len(html),
	)

	if output == "" {
		_, err = cmd.OutOrStdout().Write(html)
		return err
	}

	if err := os.WriteFile(output, html, outputFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("wrote html", logging.FieldOutput, output)
	return nil
}
