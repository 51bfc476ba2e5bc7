package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/lintreport/internal/config"
	"github.com/dkoosis/lintreport/internal/version"
	"github.com/dkoosis/lintreport/pkg/htmlreport"
	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/score"
	"github.com/dkoosis/lintreport/pkg/termreport"
)

type rootOptions struct {
	configPath string
	output     string
	scoreOnly  bool
	format     string
	title      string
	cssFile    string
	theme      string
	noColor    bool
	failUnder  float64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lintreport [report.json]",
		Short: "Render lint report documents as HTML or terminal summaries",
		Long: `lintreport reads a lint report document (the JSON emitted by the
collector reporter) and renders it as a self-contained HTML page or a
terminal summary. With no file argument the document is read from stdin.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "html-file", "o", "", "write the rendered report to this file instead of stdout")
	flags.BoolVarP(&opts.scoreOnly, "score", "s", false, "print the numeric score instead of rendering a report")
	flags.StringVar(&opts.format, "format", config.DefaultFormat, "output format: html or terminal")
	flags.StringVar(&opts.title, "title", "", "title of the rendered report")
	flags.StringVar(&opts.cssFile, "css", "", "stylesheet file inlined into the HTML report")
	flags.StringVar(&opts.theme, "theme", config.DefaultTheme, "terminal color theme: default, soft or mono")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored terminal output")
	flags.Float64Var(&opts.failUnder, "fail-under", 0, "fail when the score drops below this value")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: "+config.DefaultFileName+" in the working directory)")

	cmd.AddCommand(newWrapCmd(), newBrowseCmd(), newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd, opts, cfg)
	threshold := resolveFailUnder(cmd, opts, cfg)

	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}
	val, ok := score.Compute(doc.Stats)

	if opts.scoreOnly {
		if !ok {
			return errors.New("score unavailable: the report counts no statements")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "lint score: %.2f\n", val)
		return checkThreshold(threshold, val, ok)
	}

	out, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if err := render(out, doc, opts); err != nil {
		closeOut() //nolint:errcheck
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	return checkThreshold(threshold, val, ok)
}

func render(out io.Writer, doc *reportjson.Document, opts *rootOptions) error {
	switch opts.format {
	case "html":
		r := &htmlreport.Renderer{Title: opts.title}
		if opts.cssFile != "" {
			css, err := os.ReadFile(opts.cssFile)
			if err != nil {
				return fmt.Errorf("read stylesheet: %w", err)
			}
			r.CSS = string(css)
		}
		return r.Render(out, doc)
	case "terminal":
		tr := termreport.NewRenderer(terminalTheme(opts, out), terminalWidth(out))
		_, err := io.WriteString(out, tr.Render(doc))
		return err
	default:
		return fmt.Errorf("unknown format %q (want html or terminal)", opts.format)
	}
}

// applyConfig fills options the command line left untouched from the config
// file. Flags always win over the file.
func applyConfig(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}
	if !flags.Changed("title") && cfg.Title != "" {
		opts.title = cfg.Title
	}
	if !flags.Changed("css") && cfg.CSSFile != "" {
		opts.cssFile = cfg.CSSFile
	}
	if !flags.Changed("theme") && cfg.Theme != "" {
		opts.theme = cfg.Theme
	}
	if !flags.Changed("no-color") && cfg.NoColor {
		opts.noColor = true
	}
}

func resolveFailUnder(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) *float64 {
	if cmd.Flags().Changed("fail-under") {
		return &opts.failUnder
	}
	return cfg.FailUnder
}

func checkThreshold(threshold *float64, val float64, ok bool) error {
	if threshold == nil {
		return nil
	}
	if !ok {
		return fmt.Errorf("cannot enforce fail-under %.2f: score unavailable", *threshold)
	}
	if val < *threshold {
		return fmt.Errorf("score %.2f is below the fail-under threshold %.2f", val, *threshold)
	}
	return nil
}

// readDocument loads the report from the positional file argument, or from
// stdin when the argument is absent or "-".
func readDocument(cmd *cobra.Command, args []string) (*reportjson.Document, error) {
	if len(args) == 1 && args[0] != "-" {
		return reportjson.ReadFile(args[0])
	}
	return reportjson.Read(cmd.InOrStdin())
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// terminalTheme picks the color theme for terminal output. The monochrome
// theme engages when color is disabled or out is not a terminal.
func terminalTheme(opts *rootOptions, out io.Writer) termreport.Theme {
	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		return termreport.MonoTheme()
	}
	if f, ok := out.(*os.File); !ok || !isTerminal(f) {
		return termreport.MonoTheme()
	}
	return termreport.ThemeByName(opts.theme)
}

// terminalWidth reports the width of the terminal behind w, or 0 when w is
// not a terminal, letting the renderer fall back to its default.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
