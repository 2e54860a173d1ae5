package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/shared"
	"github.com/urfave/cli/v3"
)

// Settings prints one or all resolved settings groups as JSON, the same
// property bags the format pane would enumerate.
func (r *Runner) Settings(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)
	resolved := axis.ResolveSettings(config)
	pretty := cmd.Bool("pretty")

	if group := cmd.String("group"); group != "" {
		bag := axis.EnumerateGroup(resolved, group)
		if len(bag) == 0 {
			return fmt.Errorf("%w: unknown settings group %q", shared.ErrInvalidFlag, group)
		}
		return r.writeJSON(bag, pretty)
	}

	bags := map[string]any{}
	for _, group := range axis.Groups() {
		bags[group] = axis.EnumerateGroup(resolved, group)
	}
	return r.writeJSON(bags, pretty)
}
