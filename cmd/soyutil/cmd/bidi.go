package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/splix/soyutils-requirejs/bidi"
	"github.com/splix/soyutils-requirejs/bidi/formatter"
)

func newDirCmd(opts *options) *cobra.Command {
	var exit bool
	cmd := &cobra.Command{
		Use:   "dir [text...]",
		Short: "Estimate the direction of text",
		Long: `Prints the estimated direction of text, one of ltr, rtl or unknown. With
--exit, prints the direction of the last strongly directional character.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			e := opts.estimator()
			dir := e.TextDirection(text, opts.isHTML)
			if exit {
				dir = e.ExitDirection(text, opts.isHTML)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exit, "exit", false, "estimate the exit direction")
	return cmd
}

func newRatioCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio [text...]",
		Short: "Print the ratio of RTL words in text",
		Long: `Prints the ratio of words starting with a strong RTL character, followed by
the directionality detected from it (rtl if the ratio exceeds 0.40).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			ratio := opts.estimator().RTLWordRatio(bidi.StripHTML(text, opts.isHTML))
			dir := "ltr"
			if ratio > bidi.RTLDetectionThreshold {
				dir = "rtl"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", ratio, dir)
			return nil
		},
	}
}

func newWrapCmd(opts *options) *cobra.Command {
	var unicode bool
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Wrap text for display in the context direction",
		Long: `Wraps text of opposite direction in <span dir=...> mark-up, or in Unicode bidi
embedding characters with --unicode, and appends a mark if needed to reset the
direction after it. Input is treated as HTML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			f := formatter.New(opts.settings.Context).WithEstimator(opts.estimator())
			if unicode {
				text = f.UnicodeWrap(text, false)
			} else {
				text = f.SpanWrap(text, false)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unicode, "unicode", false, "wrap in Unicode bidi control characters")
	return cmd
}
