package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piposter/piposter/pkg/fonts"
	"github.com/piposter/piposter/pkg/pipeline"
)

// defaultOutputBase is the output filename without extension.
const defaultOutputBase = "pi_poster"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string // TOML config file; empty uses the built-in defaults
	output     string // output file (single format) or base path (multiple)
	formats    []string
	drawDigits bool // draw per-cell digit labels
	digitFont  string
	allFonts   bool // render one poster per font preset
	overlay    bool // draw the large pi glyph overlay
	noCache    bool
	refresh    bool
}

// generateCommand creates the generate command, the main entry point of
// the CLI.
func (c *CLI) generateCommand() *cobra.Command {
	formatsStr := "svg,png"
	opts := generateOpts{
		drawDigits: true,
		overlay:    true,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the pi digit poster",
		Long: `Render the pi digit poster.

The generate command lays out the cell grid, computes exactly as many
digits of pi as the grid holds, and renders the poster in the requested
formats. Digit runs are cached locally so subsequent runs are fast.

PDF output requires librsvg (rsvg-convert) on the PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file (defaults to the built-in reference poster)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", formatsStr, "output format(s): svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.drawDigits, "draw-digits", opts.drawDigits, "draw digit labels on the cells")
	cmd.Flags().StringVar(&opts.digitFont, "digit-font", "", "label font preset, or 'ask' to pick interactively (see 'piposter fonts')")
	cmd.Flags().BoolVar(&opts.allFonts, "all-fonts", false, "render one poster per font preset")
	cmd.Flags().BoolVar(&opts.overlay, "overlay", opts.overlay, "draw the large pi glyph overlay")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the digit cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute digits even if cached")

	return cmd
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg.Labels.Draw = opts.drawDigits
	switch opts.digitFont {
	case "":
	case "ask":
		preset, err := pickFontPreset()
		if err != nil {
			return err
		}
		if preset == "" {
			printInfo("No preset selected")
			return nil
		}
		cfg.Labels.Font = preset
	default:
		cfg.Labels.Font = opts.digitFont
	}

	presets := []string{cfg.Labels.Font}
	if opts.allFonts {
		presets = fonts.Names()
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	for _, preset := range presets {
		cfg.Labels.Font = preset
		pipeOpts := pipeline.Options{
			Config:  cfg,
			Formats: opts.formats,
			Overlay: opts.overlay,
			Refresh: opts.refresh,
			Logger:  loggerFromContext(ctx),
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering poster (%s)...", preset))
		spinner.Start()
		result, err := runner.Execute(ctx, pipeOpts)
		if err != nil {
			spinner.StopWithError("Generation failed")
			return err
		}
		spinner.Stop()

		suffix := ""
		if opts.allFonts {
			suffix = "_" + preset
		}
		if err := writeArtifacts(result, opts.formats, opts.output, suffix); err != nil {
			return err
		}
		printStats(result.Stats.CellCount, result.Stats.DigitCount, result.CacheInfo.DigitsHit)
	}

	printNextStep("Preview in a browser", appName+" serve")
	return nil
}

// writeArtifacts writes each rendered format to disk and prints the
// paths.
func writeArtifacts(result *pipeline.Result, formats []string, output, suffix string) error {
	printSuccess("Poster generated")
	for _, format := range formats {
		path := outputPath(output, suffix, format, len(formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath decides the file path for one format.
//
// With a single format, an explicit output is used verbatim. With
// multiple formats (or a font suffix) the output acts as a base path and
// the format extension is appended.
func outputPath(output, suffix, format string, multi bool) string {
	base := defaultOutputBase
	if output != "" {
		if !multi && suffix == "" {
			return output
		}
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	return base + suffix + "." + format
}
