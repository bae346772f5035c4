package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

type markdownOptions struct {
	style string
	width int
	raw   bool
}

func newMarkdownCmd(root *rootFlags) *cobra.Command {
	opts := markdownOptions{}

	cmd := &cobra.Command{
		Use:   "markdown",
		Short: "Print the portfolio as Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			if opts.raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content.Markdown(*app.Portfolio))
				return err
			}

			out, err := content.RenderMarkdown(*app.Portfolio, opts.style, opts.width)
			if err != nil {
				app.Logger.Error(err, "markdown render failed")
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", "dark", "Glamour style (dark, light, notty, ...)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 80, "Word wrap width")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print the Markdown source without styling")

	return cmd
}
