package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/tui"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// fallbackWidth sizes the static document written when stdout is not a terminal.
const fallbackWidth = 100

type runOptions struct {
	section string
	watch   bool
}

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive portfolio page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPageCmd(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "Open at a section (about, projects, experience, contact)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the content file when it changes")

	return cmd
}

func runPageCmd(cmd *cobra.Command, root *rootFlags, opts runOptions) error {
	if opts.section != "" && !slices.Contains(page.NavTargets, opts.section) {
		return folioerrors.NewValidationError("section", fmt.Sprintf("unknown section %q", opts.section), nil)
	}

	app, err := loadApp(root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	if opts.watch && app.ContentPath == "" {
		return folioerrors.NewValidationError("watch", "--watch needs a content file (--content or config content)", nil)
	}

	if !stdoutIsTerminal() {
		reason := folioerrors.NewTerminalError("stdout is not a terminal", nil)
		app.Logger.With("reason", reason.Error()).Warn("interactive page unavailable, writing static document")
		return writeStatic(cmd.OutOrStdout(), app, renderOptions{width: fallbackWidth, theme: app.Theme.String()})
	}

	return runPage(app, opts)
}

func runPage(app *AppContext, opts runOptions) error {
	log := app.Logger.With("command", "run")

	model := tui.NewModel(tui.Options{
		Portfolio: *app.Portfolio,
		Page:      app.pageOptions(),
		State:     app.stateOptions(app.Theme),
		Scale:     app.Scale,
		Logger:    app.Logger,
		Start:     opts.section,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	program := tea.NewProgram(model, programOpts...)

	if opts.watch {
		watcher, err := content.NewWatcher(app.ContentPath, content.DefaultDebounce)
		if err != nil {
			return err
		}
		defer watcher.Close() //nolint:errcheck

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Watch(ctx,
			func(p content.Portfolio) { program.Send(tui.ContentMsg{Portfolio: p}) },
			func(err error) { program.Send(tui.ContentMsg{Err: err}) },
		)
		log.With("path", watcher.Path()).Info("watching content")
	}

	log.Info("launching page")
	if _, err := program.Run(); err != nil {
		log.Error(err, "page execution failed")
		return fmt.Errorf("failed to run page: %w", err)
	}
	log.Info("page closed")

	return nil
}
