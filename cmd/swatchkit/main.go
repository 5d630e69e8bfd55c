package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/config"
	"github.com/jsvensson/swatchkit/internal/engine"
	"github.com/jsvensson/swatchkit/internal/format"
	"github.com/jsvensson/swatchkit/internal/palette"
	"github.com/jsvensson/swatchkit/internal/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/term"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose   int
	flagFormats   []string
	flagStudio    bool
	flagPalette   string
	flagInput     string
	flagOut       string
	flagTemplates string
	flagTargets   []string
	flagTitle     string
	flagCheck     bool
	envFormats    []string // from SWATCHKIT_FORMATS; ranks below palette files
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:               "swatchkit",
	Short:             "Convert colors between notations and export palettes",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var convertCmd = &cobra.Command{
	Use:   "convert [colors...]",
	Short: "Print colors in HEX, RGB, HSL and CMYK",
	Long: `Convert one or more colors to the selected notations. Colors may be given
as arguments or piped on stdin, separated by commas or newlines.`,
	RunE: runConvert,
}

var exportCmd = &cobra.Command{
	Use:   "export [colors...]",
	Short: "Export a palette as ASE, PDF, PNG, text and studio code",
	Long: `Export a palette. The palette comes from an HCL palette file (--palette),
from colors or a studio code given as arguments, from a file (--input),
or from stdin. Colors imported from input are deduplicated.`,
	RunE: runExport,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")

	convertCmd.Flags().StringArrayVarP(&flagFormats, "format", "f", nil, "notations to print: hex, rgb, hsl, cmyk (can be repeated)")
	convertCmd.Flags().BoolVar(&flagStudio, "studio", false, "print the colors as a studio code instead")

	exportCmd.Flags().StringVar(&flagPalette, "palette", "", "path to palette HCL file")
	exportCmd.Flags().StringVarP(&flagInput, "input", "i", "", "read colors or a studio code from a file")
	exportCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	exportCmd.Flags().StringVar(&flagTemplates, "templates", "", "templates directory (every *.tmpl is rendered)")
	exportCmd.Flags().StringArrayVarP(&flagTargets, "target", "t", nil, "export only specific targets: ase, pdf, png, txt, studio (can be repeated)")
	exportCmd.Flags().StringArrayVarP(&flagFormats, "format", "f", nil, "notations printed on sheets and text output (can be repeated)")
	exportCmd.Flags().StringVar(&flagTitle, "title", "", "title printed on PDF and PNG sheets")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup configures logging and reads environment defaults, including a
// .env file in the working directory.
func setup(cmd *cobra.Command, args []string) error {
	commonlog.Configure(flagVerbose, nil)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if v := os.Getenv("SWATCHKIT_OUT"); v != "" {
		if f := cmd.Flags().Lookup("out"); f != nil && !f.Changed {
			if err := f.Value.Set(v); err != nil {
				return err
			}
		}
	}
	envFormats = nil
	if v := os.Getenv("SWATCHKIT_FORMATS"); v != "" {
		for _, name := range strings.Split(v, ",") {
			envFormats = append(envFormats, strings.TrimSpace(name))
		}
	}
	return nil
}

// formatSet picks the --format flags, then SWATCHKIT_FORMATS, then all formats.
func formatSet() (color.FormatSet, error) {
	switch {
	case len(flagFormats) > 0:
		return color.ParseFormatSet(flagFormats)
	case len(envFormats) > 0:
		return color.ParseFormatSet(envFormats)
	}
	return color.AllFormats, nil
}

// readInput joins args, or reads stdin when no args are given and stdin is
// not a terminal.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	set, err := formatSet()
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res := parser.ParseAll(input)
	for _, tok := range res.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid color: %s\n", tok)
	}
	if len(res.Colors) == 0 {
		return errors.New("no valid colors given")
	}

	out := cmd.OutOrStdout()
	if flagStudio {
		p := palette.New()
		for _, c := range res.Colors {
			p.Add(c)
		}
		fmt.Fprintln(out, p.StudioCode())
	} else {
		blocks := make([]string, len(res.Colors))
		for i, c := range res.Colors {
			blocks[i] = color.Text(c, set)
		}
		fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
	}

	if len(res.Failed) > 0 {
		return fmt.Errorf("%d of %d colors could not be parsed", len(res.Failed), len(res.Failed)+len(res.Colors))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	job, err := loadJob(cmd, args)
	if err != nil {
		return err
	}

	if flagTitle != "" {
		job.Title = flagTitle
	}

	targets := make([]engine.Target, 0, len(flagTargets))
	for _, name := range flagTargets {
		t, err := engine.ParseTarget(name)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}

	e := &engine.Engine{
		OutputDir:    flagOut,
		TemplatesDir: flagTemplates,
		Targets:      targets,
	}

	written, err := e.Run(job)
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(written), flagOut)
	return nil
}

func loadJob(cmd *cobra.Command, args []string) (engine.Job, error) {
	if flagPalette != "" {
		if len(args) > 0 || flagInput != "" {
			return engine.Job{}, errors.New("--palette cannot be combined with color input")
		}
		doc, err := config.Load(flagPalette)
		if err != nil {
			return engine.Job{}, fmt.Errorf("loading palette: %w", err)
		}
		job := engine.JobFromDocument(doc, baseName(flagPalette))
		if len(flagFormats) > 0 || len(doc.Export.Formats) == 0 {
			if job.Formats, err = formatSet(); err != nil {
				return engine.Job{}, err
			}
		}
		return job, nil
	}

	var input string
	if flagInput != "" {
		data, err := os.ReadFile(flagInput)
		if err != nil {
			return engine.Job{}, fmt.Errorf("reading input: %w", err)
		}
		input = string(data)
	} else {
		var err error
		if input, err = readInput(cmd, args); err != nil {
			return engine.Job{}, err
		}
	}

	p := palette.New()
	report := p.ImportInput(input)
	for _, tok := range report.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid color: %s\n", tok)
	}
	for _, hex := range report.Duplicates {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipped duplicate: %s\n", hex)
	}

	set, err := formatSet()
	if err != nil {
		return engine.Job{}, err
	}
	return engine.Job{Palette: p, Formats: set}, nil
}

// baseName strips the directory and every extension, so
// "themes/brand.swatch.hcl" becomes "brand".
func baseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
