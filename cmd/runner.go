package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playaxis/internal/axis"
	"github.com/desertthunder/playaxis/internal/host"
	"github.com/desertthunder/playaxis/internal/shared"
	"github.com/desertthunder/playaxis/internal/source"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, runCommand, serveCommand, scheduleCommand, settingsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the config file named by the command's --config flag,
// falling back to defaults when it is missing or unparsable.
func (r *Runner) loadConfig(cmd *cli.Command) *shared.Config {
	configPath := cmd.String("config")
	if configPath == "" {
		configPath = r.configPath
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if config, err := shared.LoadConfig(configPath); err == nil {
				return config
			} else {
				r.logger.Warn("failed to load config, using defaults", "error", err)
			}
		}
	}

	config := *r.config
	return &config
}

// applyOverrides folds command-line flag overrides into the config.
func applyOverrides(config *shared.Config, cmd *cli.Command) {
	if cmd.IsSet("interval") {
		config.Playback.StepInterval = int(cmd.Int("interval"))
	}
	if cmd.IsSet("loop") {
		config.Playback.Loop = cmd.Bool("loop")
	}
	if cmd.IsSet("autostart") {
		config.Playback.AutoStart = cmd.Bool("autostart")
	}
	if cmd.IsSet("csv") {
		config.Source.CSVPath = cmd.String("csv")
	}
	if cmd.IsSet("db") {
		config.Source.DatabasePath = cmd.String("db")
	}
	if cmd.IsSet("table") {
		config.Source.Table = cmd.String("table")
	}
	if cmd.IsSet("column") {
		config.Source.Column = cmd.String("column")
	}
	config.Resolve()
}

// resolveSource picks the data source from config: CSV when a path is set,
// SQLite otherwise. The returned closer releases the database connection.
func (r *Runner) resolveSource(config *shared.Config) (source.Source, func(), error) {
	if config.Source.CSVPath != "" {
		return source.NewCSVSource(config.Source.CSVPath, config.Source.Column), func() {}, nil
	}

	db, err := config.Source.OpenDatabase()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data source: %w", err)
	}

	src, err := source.NewSQLiteSource(db, config.Source.Table, config.Source.Column)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return src, func() { db.Close() }, nil
}

// buildViewModel loads a snapshot from the resolved source and builds the
// view model, honoring the readiness predicate.
func (r *Runner) buildViewModel(ctx context.Context, config *shared.Config) (*axis.ViewModel, error) {
	src, closeSource, err := r.resolveSource(config)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	snapshot, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load data from %s source: %w", src.Name(), err)
	}

	vm, err := axis.Build(snapshot, config, host.NewUUIDIdentity())
	if err != nil {
		return nil, err
	}

	r.logger.Debug("view model built", "source", src.Name(), "points", len(vm.DataPoints))
	return vm, nil
}

// seedDemo creates and fills the demo table in the configured database.
func (r *Runner) seedDemo(config *shared.Config) error {
	db, err := config.Source.OpenDatabase()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return r.seedDemoDB(db, config)
}

func (r *Runner) seedDemoDB(db *sql.DB, config *shared.Config) error {
	if err := source.Seed(db, config.Source.Table, config.Source.Column); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	r.logger.Info("demo data ready", "table", config.Source.Table, "column", config.Source.Column)
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
