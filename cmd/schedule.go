package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playaxis/internal/formatter"
	"github.com/desertthunder/playaxis/internal/shared"
	"github.com/urfave/cli/v3"
)

// Schedule prints the reveal timeline without playing it.
func (r *Runner) Schedule(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)
	applyOverrides(config, cmd)

	vm, err := r.buildViewModel(ctx, config)
	if err != nil {
		return err
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(vm)
	case "md", "markdown":
		data, err = formatter.ExportToMarkdown(vm)
	case "text", "":
		data, err = formatter.ExportToText(vm)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to format timeline: %w", err)
	}

	if output := cmd.String("output"); output != "" {
		if err := formatter.WriteToFile(data, output); err != nil {
			return err
		}
		return r.writePlain("timeline written to %s\n", output)
	}

	return r.writePlain("%s", data)
}
