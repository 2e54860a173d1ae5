package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Playback   PlaybackConfig   `toml:"playback"`
	Appearance AppearanceConfig `toml:"appearance"`
	Caption    CaptionConfig    `toml:"caption"`
	Source     SourceConfig     `toml:"source"`
	Host       HostConfig       `toml:"host"`
	Server     ServerConfig     `toml:"server"`
}

// PlaybackConfig contains reveal cadence settings.
type PlaybackConfig struct {
	AutoStart    bool `toml:"auto_start"`
	Loop         bool `toml:"loop"`
	StepInterval int  `toml:"step_interval"`
}

// AppearanceConfig contains transport button colors.
//
// When ShowAll is false, PickedColor applies to every button and the
// per-button values are ignored.
type AppearanceConfig struct {
	ShowAll       bool   `toml:"show_all"`
	PickedColor   string `toml:"picked_color"`
	PlayColor     string `toml:"play_color"`
	PauseColor    string `toml:"pause_color"`
	StopColor     string `toml:"stop_color"`
	PreviousColor string `toml:"previous_color"`
	NextColor     string `toml:"next_color"`
}

// CaptionConfig contains caption label settings.
type CaptionConfig struct {
	Show     bool   `toml:"show"`
	Color    string `toml:"color"`
	FontSize int    `toml:"font_size"`
	Align    string `toml:"align"`
}

// SourceConfig contains data binding settings for the CSV and SQLite sources.
type SourceConfig struct {
	CSVPath      string `toml:"csv_path"`
	DatabasePath string `toml:"database_path"`
	Table        string `toml:"table"`
	Column       string `toml:"column"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// HostConfig contains settings for the HTTP selection bridge.
type HostConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	RateLimit      int    `toml:"rate_limit"`
}

// ServerConfig contains control server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// MinStepInterval and MaxStepInterval bound the reveal cadence in seconds.
const (
	MinStepInterval = 1
	MaxStepInterval = 60
)

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Parsing starts from [DefaultConfig], so any field the file omits keeps its
// default value rather than zeroing out.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.Resolve()
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Resolve clamps out-of-range values to their documented bounds.
func (c *Config) Resolve() {
	if c.Playback.StepInterval < MinStepInterval {
		c.Playback.StepInterval = MinStepInterval
	}
	if c.Playback.StepInterval > MaxStepInterval {
		c.Playback.StepInterval = MaxStepInterval
	}
	if c.Caption.FontSize <= 0 {
		c.Caption.FontSize = DefaultConfig().Caption.FontSize
	}
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidInput)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
