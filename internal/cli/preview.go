package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/janek-w/mdspan/internal/logging"
	"github.com/janek-w/mdspan/internal/ui/pretty"
	"github.com/janek-w/mdspan/pkg/config"
	"github.com/janek-w/mdspan/pkg/engine"
	"github.com/janek-w/mdspan/pkg/span"
)

type previewFlags struct {
	focusLine   int
	allSyntax   bool
	width       int
	imagePolicy string
}

func newPreviewCommand(root *rootFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a markdown file as a styled span tree",
		Long: `Render a markdown file to the terminal the way an editor host would
present it: syntax markers collapsed except on the focused line, list
markers as bullets, thematic breaks as rules, images as placeholders.

Examples:
  mdspan preview README.md                 # all syntax collapsed
  mdspan preview README.md --focus-line 0  # markers visible on line 0
  mdspan preview README.md --all-syntax    # plain editing view`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.focusLine, "focus-line", engine.NoFocus,
		"0-based line whose syntax markers stay visible (-1 for none)")
	cmd.Flags().BoolVar(&flags.allSyntax, "all-syntax", false,
		"show every syntax marker literally")
	cmd.Flags().IntVar(&flags.width, "width", 0,
		"wrap width in columns (0 = terminal width)")
	cmd.Flags().StringVar(&flags.imagePolicy, "image-policy", "",
		"image realization: inline or block (overrides config)")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, root *rootFlags, flags *previewFlags) error {
	logger := logging.Default()

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}
	if flags.imagePolicy != "" {
		cfg.Image.Policy = config.ImagePolicy(flags.imagePolicy)
		if !cfg.Image.Policy.IsValid() {
			return fmt.Errorf("invalid image policy %q", flags.imagePolicy)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	opts := engineOptions(cfg)
	opts.ShowAllSyntax = flags.allSyntax
	eng := engine.New(opts)

	tree := eng.Render(string(data), flags.focusLine, span.Style{})
	logger.Debug("rendered span tree",
		logging.FieldPath, path,
		logging.FieldFocusLine, flags.focusLine,
		logging.FieldPolicy, string(cfg.Image.Policy),
		logging.FieldSegments, len(tree.Segments),
	)

	width := flags.width
	if width == 0 {
		width = cfg.Preview.Width
	}
	if width == 0 {
		width = terminalWidth()
	}

	logger.Debug("preview layout", logging.FieldWidth, width)

	colorEnabled := pretty.IsColorEnabled(colorMode(root, cfg), cmd.OutOrStdout())
	renderer := pretty.NewRenderer(pretty.NewStyles(colorEnabled), width)

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(tree))
	tree.Release()
	return nil
}

// engineOptions maps file configuration to engine options.
func engineOptions(cfg *config.Config) engine.Options {
	opts := engine.Options{
		LineHeight:     cfg.Image.LineHeight,
		ImageHeight:    cfg.Image.Height,
		ImageWidth:     cfg.Image.Width,
		DetectLanguage: cfg.DetectLanguage,
	}
	if cfg.Image.Policy == config.ImagePolicyBlock {
		opts.ImagePolicy = engine.ImageBlock
	}
	return opts
}

// colorMode resolves the --color flag against the config default.
func colorMode(root *rootFlags, cfg *config.Config) string {
	if root.color != "" && root.color != "auto" {
		return root.color
	}
	if cfg.Preview.Color != "" {
		return string(cfg.Preview.Color)
	}
	return "auto"
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
