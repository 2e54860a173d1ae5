package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playaxis/internal/host"
	"github.com/desertthunder/playaxis/internal/playback"
	"github.com/desertthunder/playaxis/internal/shared"
	"github.com/desertthunder/playaxis/internal/ui"
	"github.com/urfave/cli/v3"
)

// Run launches the interactive transport surface.
func (r *Runner) Run(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)
	applyOverrides(config, cmd)

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/playaxis-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	vm, err := r.buildViewModel(ctx, config)
	if err != nil {
		return err
	}
	if len(vm.DataPoints) == 0 {
		return fmt.Errorf("%w: nothing to play", shared.ErrEmptySource)
	}

	controller := playback.NewController(playback.ControllerOpts{
		Context:   ctx,
		Selection: host.NewLogSelection(fileLogger),
		Logger:    fileLogger,
	})
	controller.SetViewModel(vm)

	model := ui.NewModel(ctx, controller)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
