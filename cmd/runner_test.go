package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/playaxis/internal/shared"
	tu "github.com/desertthunder/playaxis/internal/testing"
)

func writeFixtureCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write CSV fixture: %v", err)
	}
	return path
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.config.Playback.StepInterval != 5 {
				t.Errorf("expected default interval 5, got %d", runner.config.Playback.StepInterval)
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 5 {
			t.Errorf("expected 5 commands, got %d", len(commands))
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})

	t.Run("resolveSource", func(t *testing.T) {
		t.Run("prefers CSV when a path is configured", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Source.CSVPath = writeFixtureCSV(t, "month\nJan\n")

			runner := NewRunner(RunnerOpts{Config: config})
			src, closeSource, err := runner.resolveSource(config)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			defer closeSource()

			if src.Name() != "csv" {
				t.Errorf("expected csv source, got %s", src.Name())
			}
		})

		t.Run("falls back to sqlite", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Source.DatabasePath = filepath.Join(t.TempDir(), "axis.db")

			runner := NewRunner(RunnerOpts{Config: config})
			src, closeSource, err := runner.resolveSource(config)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			defer closeSource()

			if src.Name() != "sqlite" {
				t.Errorf("expected sqlite source, got %s", src.Name())
			}
		})

		t.Run("rejects a blank table", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Source.DatabasePath = filepath.Join(t.TempDir(), "axis.db")
			config.Source.Table = ""

			runner := NewRunner(RunnerOpts{Config: config})
			if _, _, err := runner.resolveSource(config); err == nil {
				t.Fatal("expected error for blank table")
			}
		})
	})

	t.Run("buildViewModel", func(t *testing.T) {
		t.Run("builds points from a CSV source", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Source.CSVPath = writeFixtureCSV(t, "month\nJan\nFeb\n")

			runner := NewRunner(RunnerOpts{Config: config})
			vm, err := runner.buildViewModel(context.Background(), config)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(vm.DataPoints) != 2 {
				t.Fatalf("expected 2 points, got %d", len(vm.DataPoints))
			}
			if vm.DataPoints[0].Category != "Jan" {
				t.Errorf("expected Jan first, got %s", vm.DataPoints[0].Category)
			}
			if vm.DataPoints[0].SelectionID == "" {
				t.Error("expected a selection identity on each point")
			}
		})

		t.Run("surfaces source errors", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Source.CSVPath = filepath.Join(t.TempDir(), "missing.csv")

			runner := NewRunner(RunnerOpts{Config: config})
			if _, err := runner.buildViewModel(context.Background(), config); err == nil {
				t.Fatal("expected error for a missing file")
			}
		})
	})

	t.Run("seedDemoDB", func(t *testing.T) {
		db, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		config := shared.DefaultConfig()
		runner := NewRunner(RunnerOpts{Config: config})

		if err := runner.seedDemoDB(db, config); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM "categories"`).Scan(&count); err != nil {
			t.Fatalf("failed to count seeded rows: %v", err)
		}
		if count != 12 {
			t.Errorf("expected 12 seeded rows, got %d", count)
		}
	})

	t.Run("loadConfig reads values from the named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[playback]\nstep_interval = 9\n"), 0644); err != nil {
			t.Fatalf("failed to write config fixture: %v", err)
		}

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		cmd := settingsCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"settings", "--config", path, "--group", "playback", "--pretty=false",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), `"stepIntervalSeconds":9`) {
			t.Errorf("expected interval 9 from file, got %s", output.String())
		}
	})
}

func TestCommands(t *testing.T) {
	t.Run("schedule prints the reveal timeline", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		csvPath := writeFixtureCSV(t, "month\nJan\nFeb\n")

		cmd := scheduleCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"schedule",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--csv", csvPath,
			"--interval", "2",
			"--format", "text",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "1. Jan (t=2s)") {
			t.Errorf("expected Jan at t=2s, got:\n%s", result)
		}
		if !strings.Contains(result, "2. Feb (t=4s)") {
			t.Errorf("expected Feb at t=4s, got:\n%s", result)
		}
	})

	t.Run("schedule writes to a file", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		csvPath := writeFixtureCSV(t, "month\nJan\n")
		outPath := filepath.Join(t.TempDir(), "timeline.csv")

		cmd := scheduleCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"schedule",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--csv", csvPath,
			"--format", "csv",
			"--output", outPath,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read timeline: %v", err)
		}
		if !strings.Contains(string(content), "Index,Category,SelectionID,OffsetSeconds") {
			t.Errorf("expected CSV header, got:\n%s", content)
		}
		if !strings.Contains(output.String(), "timeline written to") {
			t.Errorf("expected confirmation message, got %q", output.String())
		}
	})

	t.Run("schedule rejects an unknown format", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		csvPath := writeFixtureCSV(t, "month\nJan\n")

		cmd := scheduleCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"schedule",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--csv", csvPath,
			"--format", "yaml",
		})
		if err == nil {
			t.Fatal("expected error for unknown format")
		}
		if !strings.Contains(err.Error(), "unknown format") {
			t.Errorf("expected format error, got %v", err)
		}
	})

	t.Run("settings prints a single group", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		cmd := settingsCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"settings",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--group", "playback",
			"--pretty=false",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, `"stepIntervalSeconds":5`) {
			t.Errorf("expected default cadence in playback group, got %s", result)
		}
		if strings.Contains(result, "pickedColor") {
			t.Errorf("expected only the playback group, got %s", result)
		}
	})

	t.Run("settings prints every group by default", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		cmd := settingsCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"settings",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--pretty=false",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		for _, group := range []string{"playback", "colorSelector", "caption"} {
			if !strings.Contains(result, group) {
				t.Errorf("expected %s group in output, got %s", group, result)
			}
		}
	})

	t.Run("settings rejects an unknown group", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		cmd := settingsCommand(runner)
		err := cmd.Run(context.Background(), []string{
			"settings",
			"--config", filepath.Join(t.TempDir(), "absent.toml"),
			"--group", "nope",
		})
		if err == nil {
			t.Fatal("expected error for unknown group")
		}
		if !strings.Contains(err.Error(), "unknown settings group") {
			t.Errorf("expected group error, got %v", err)
		}
	})

	t.Run("setup creates the config file", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		configPath := filepath.Join(t.TempDir(), "config.toml")

		cmd := setupCommand(runner)
		err := cmd.Run(context.Background(), []string{"setup", "--config", configPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Errorf("expected config file to exist: %v", err)
		}
	})
}
