// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// sourceFlags are shared by every command that loads data.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "csv",
			Usage: "Path to a CSV file to play (overrides the SQLite source)",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "Path to the SQLite database",
		},
		&cli.StringFlag{
			Name:  "table",
			Usage: "Table holding the category field",
		},
		&cli.StringFlag{
			Name:  "column",
			Usage: "Category column to iterate",
		},
	}
}

// playbackFlags override the configured cadence.
func playbackFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Usage:   "Seconds between reveals (1-60)",
		},
		&cli.BoolFlag{
			Name:  "loop",
			Usage: "Restart from the first point after the last",
		},
		&cli.BoolFlag{
			Name:  "autostart",
			Usage: "Begin playing as soon as data is loaded",
		},
	}
}

// setupCommand initializes configuration and optional demo data
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config.toml and optionally seed demo data",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "Seed a demo month sequence into the configured database",
			},
		},
		Action: r.Setup,
	}
}

// runCommand launches the interactive transport surface
func runCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Play the category sequence in the terminal",
		Flags:  append(append([]cli.Flag{configFlag()}, sourceFlags()...), playbackFlags()...),
		Action: r.Run,
	}
}

// serveCommand runs headless playback behind the control API
func serveCommand(r *Runner) *cli.Command {
	flags := append(append([]cli.Flag{configFlag()}, sourceFlags()...), playbackFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "addr",
			Usage: "Listen address for the control API (overrides config)",
		},
		&cli.StringFlag{
			Name:  "host-url",
			Usage: "Cross-filter endpoint to forward selection events to",
		},
	)

	return &cli.Command{
		Name:   "serve",
		Usage:  "Headless playback driven by the HTTP control API",
		Flags:  flags,
		Action: r.Serve,
	}
}

// scheduleCommand prints the reveal timeline
func scheduleCommand(r *Runner) *cli.Command {
	flags := append(append([]cli.Flag{configFlag()}, sourceFlags()...), playbackFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: csv, md, or text",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (defaults to stdout)",
		},
	)

	return &cli.Command{
		Name:   "schedule",
		Usage:  "Print the reveal timeline without playing it",
		Flags:  flags,
		Action: r.Schedule,
	}
}

// settingsCommand prints resolved settings groups
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Print a resolved settings group as JSON",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Usage:   "Settings group: playback, colorSelector, or caption",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Settings,
	}
}
