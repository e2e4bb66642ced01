package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/splix/soyutils-requirejs/bidi"
	"github.com/splix/soyutils-requirejs/internal/config"
)

// options are the global flags and the settings resolved from them.
type options struct {
	configPath string
	context    string
	isHTML     bool
	trace      string

	settings *config.Settings
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	gtrace.CoreTracer = gologadapter.New()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "soyutil",
		Short: "Bidi formatting, escaping and word breaking of text",
		Long: `soyutil estimates the directionality of text and formats it for display in a
context of given directionality. It also escapes and cleans HTML and inserts
word breaks into long runs of characters.

Text is taken from the arguments, joined by spaces, or else read from stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&opts.context, "context", "", "context direction: ltr, rtl, unknown or locale (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&opts.isHTML, "html", false, "treat input as HTML")
	rootCmd.PersistentFlags().StringVar(&opts.trace, "trace", "", "trace level: Debug, Info or Error (default: from config)")

	rootCmd.AddCommand(newDirCmd(opts))
	rootCmd.AddCommand(newRatioCmd(opts))
	rootCmd.AddCommand(newWrapCmd(opts))
	rootCmd.AddCommand(newWbrCmd(opts))
	rootCmd.AddCommand(newEscapeCmd(opts))
	rootCmd.AddCommand(newCleanCmd(opts))
	return rootCmd
}

// resolve loads the configuration and applies environment and flags on top
// of it.
func (opts *options) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if opts.context != "" {
		cfg.Bidi.Context = opts.context
	}
	if opts.trace != "" {
		cfg.Trace = opts.trace
	}
	s, err := cfg.Resolve()
	if err != nil {
		return err
	}
	opts.settings = s
	gtrace.CoreTracer.SetTraceLevel(s.TraceLevel)
	gtrace.CoreTracer.Debugf("%s: context %s, word break target %s", cmd.Name(), s.Context, s.Target)
	return nil
}

func (opts *options) estimator() *bidi.Estimator {
	return bidi.NewEstimator(opts.settings.Classifier)
}

// input returns the arguments joined by spaces or, without arguments,
// stdin without its final line ending.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

