package main

import (
	"context"
	"os"

	"github.com/desertthunder/playaxis/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes config.toml from the embedded template and, with --demo,
// seeds the demo dataset so `playaxis run` works out of the box.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	if cmd.Bool("demo") {
		r.logger.Info("seeding demo data", "path", config.Source.DatabasePath)
		if err := r.seedDemo(config); err != nil {
			return err
		}
	}

	return r.writePlain("setup complete\n")
}
