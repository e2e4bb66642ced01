package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/splix/soyutils-requirejs/sanitized"
	"github.com/splix/soyutils-requirejs/wordbreak"
)

func newWbrCmd(opts *options) *cobra.Command {
	var (
		maxChars int
		target   string
	)
	cmd := &cobra.Command{
		Use:   "wbr [text...]",
		Short: "Insert word breaks into long runs of characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			t := opts.settings.Target
			if target != "" {
				if t, err = wordbreak.ParseTarget(target); err != nil {
					return err
				}
			}
			n := opts.settings.MaxChars
			if cmd.Flags().Changed("max") {
				n = maxChars
			}
			fmt.Fprintln(cmd.OutOrStdout(), wordbreak.New(t).Insert(text, n))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxChars, "max", 0, "maximum number of characters between breaks (default: from config)")
	cmd.Flags().StringVar(&target, "target", "", "marker target: generic, legacy-webkit or legacy-opera (default: from config)")
	return cmd
}

func newEscapeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape text for use in HTML",
		Long:  `Escapes text for HTML. With --html, input is trusted HTML and printed as is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			c := sanitized.MarkUnsanitizedText(text)
			if opts.isHTML {
				c = sanitized.OrdainSanitizedHTML(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sanitized.EscapeHTML(c))
			return nil
		},
	}
}

func newCleanCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "clean [html...]",
		Short: "Sanitize untrusted HTML",
		Long: `Removes unsafe elements and attributes from HTML, keeping basic formatting.
With --strict, removes all tags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			c := sanitized.CleanHTML(text, nil)
			if strict {
				c = sanitized.StripTags(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "remove all tags")
	return cmd
}
