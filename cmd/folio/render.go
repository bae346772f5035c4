package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

type renderOptions struct {
	theme   string
	width   int
	mounted bool
	color   string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page as a static document",
		Long: `Write the page as it looks before it mounts: no background decorations,
no pointer tracking. Pass --mounted to include the decorations at frame zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width < 1 {
				return folioerrors.NewValidationError("width", "must be positive", nil)
			}
			profile, err := parseColorProfile(opts.color)
			if err != nil {
				return err
			}

			app, err := loadApp(root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			if opts.color != "auto" {
				lipgloss.SetColorProfile(profile)
			}
			if opts.theme == "" {
				opts.theme = app.Theme.String()
			}
			return writeStatic(cmd.OutOrStdout(), app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to render (dark or light)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", fallbackWidth, "Render width in columns")
	cmd.Flags().BoolVar(&opts.mounted, "mounted", false, "Include background decorations")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output (auto, none, ansi, ansi256, truecolor)")

	return cmd
}

func parseColorProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "auto":
		return lipgloss.ColorProfile(), nil
	case "none", "ascii":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, folioerrors.NewValidationError("color", fmt.Sprintf("unknown color profile %q", name), nil)
	}
}

func writeStatic(w io.Writer, app *AppContext, opts renderOptions) error {
	theme, err := components.ParseThemeMode(opts.theme)
	if err != nil {
		return folioerrors.NewValidationError("theme", err.Error(), err)
	}

	state := page.NewState(app.stateOptions(theme)...)
	if opts.mounted {
		state.Mount()
	}

	ctx := components.DefaultContext().
		WithWidth(opts.width).
		WithScale(app.Scale)
	doc := page.Build(state, *app.Portfolio, app.pageOptions()).Render(ctx)

	app.Logger.WithFields(map[string]any{
		"theme":   theme.String(),
		"width":   opts.width,
		"mounted": state.Mounted(),
	}).Debug("static render")

	_, err = fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, doc.Nav, doc.Body))
	return err
}
