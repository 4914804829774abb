package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type options struct {
	file      string
	places    uint
	color     string
	highlight int
	debug     bool
	logJSON   bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "asciitable",
		Short: "Render a table definition as a bordered text table",
		Long: `Render a YAML table definition as a bordered text table.

Float cells are truncated, not rounded, to the configured decimal places.
Without --file a built-in cluster overview is rendered.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(opts.debug, opts.logJSON, cmd.ErrOrStderr())
			return run(cmd, opts, logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "YAML table definition (default: built-in demo)")
	f.UintVarP(&opts.places, "places", "p", 0, "Decimal places for float cells (overrides the definition)")
	f.StringVar(&opts.color, "color", "auto", "Highlight color: auto, always, or never")
	f.IntVar(&opts.highlight, "highlight-column", 0, "Column whose text cells are highlighted (-1 disables)")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	f.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON instead of text")
	return cmd
}

func run(cmd *cobra.Command, opts options, logger *slog.Logger) error {
	def := demoDefinition()
	if opts.file != "" {
		var err error
		if def, err = loadDefinitionFile(opts.file); err != nil {
			return err
		}
		logger.Debug("loaded definition", "file", opts.file, "rows", len(def.Rows))
	}
	if cmd.Flags().Changed("places") {
		def.Places = &opts.places
	}

	out := cmd.OutOrStdout()
	profile, err := colorProfile(opts.color, out)
	if err != nil {
		return err
	}
	var style func(string) string
	if profile != termenv.Ascii {
		o := termenv.NewOutput(out, termenv.WithProfile(profile))
		style = func(s string) string {
			return o.String(s).Foreground(termenv.ANSIBrightYellow).String()
		}
	}

	tbl := def.table(opts.highlight, style)
	logger.Debug("rendering table",
		"title", tbl.Title(),
		"columns", len(tbl.Headers()),
		"rows", len(tbl.Rows()),
		"places", tbl.DecimalPlaces(),
		"color", profile != termenv.Ascii,
	)
	_, err = tbl.WriteTo(out)
	return err
}

// colorProfile resolves a --color mode. NO_COLOR always wins; auto detects
// from the output writer, which yields no color when it is not a terminal.
func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii, nil
	}
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		return termenv.ANSI, nil
	case "auto":
		return termenv.NewOutput(w).EnvColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid --color %q: want auto, always, or never", mode)
	}
}

// newLogger returns a stderr logger. Debug lowers the level from Info.
func newLogger(debug, json bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
