// package formatter provides functions to export the reveal timeline to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/playaxis/internal/axis"
)

// Offset returns the fire time in seconds for the data point at index when
// playback starts from Stopped: the first reveal lands one full interval
// after play, not immediately.
func Offset(settings axis.PlaybackSettings, index int) int {
	return (index + 1) * settings.StepInterval
}

// ExportToCSV converts a view model's timeline to CSV with columns: Index, Category, SelectionID, OffsetSeconds
func ExportToCSV(vm *axis.ViewModel) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Index", "Category", "SelectionID", "OffsetSeconds"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, point := range vm.DataPoints {
		record := []string{
			strconv.Itoa(i),
			point.Category,
			point.SelectionID,
			strconv.Itoa(Offset(vm.Settings.Playback, i)),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a view model's timeline to a Markdown table
func ExportToMarkdown(vm *axis.ViewModel) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Reveal Timeline\n\n")
	buf.WriteString(fmt.Sprintf("**Points**: %d\n", len(vm.DataPoints)))
	buf.WriteString(fmt.Sprintf("**Interval**: %ds\n", vm.Settings.Playback.StepInterval))
	buf.WriteString(fmt.Sprintf("**Loop**: %t\n\n", vm.Settings.Playback.Loop))

	buf.WriteString("| # | Category | Fires at |\n")
	buf.WriteString("|---|----------|----------|\n")
	for i, point := range vm.DataPoints {
		buf.WriteString(fmt.Sprintf("| %d | %s | t=%ds |\n", i, point.Category, Offset(vm.Settings.Playback, i)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a view model's timeline to plain text format
func ExportToText(vm *axis.ViewModel) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Points: %d\n", len(vm.DataPoints)))
	buf.WriteString(fmt.Sprintf("Interval: %ds\n\n", vm.Settings.Playback.StepInterval))

	for i, point := range vm.DataPoints {
		buf.WriteString(fmt.Sprintf("%d. %s (t=%ds)\n", i+1, point.Category, Offset(vm.Settings.Playback, i)))
	}

	return buf.Bytes(), nil
}

// WriteToFile writes exported data to the given path.
func WriteToFile(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
