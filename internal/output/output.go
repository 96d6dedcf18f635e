// Package output renders recommendation results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	taskmatch "github.com/kailas-cloud/taskmatch/pkg/sdk"
)

// Supported formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Write renders resp in the given format. An empty format means table.
func Write(w io.Writer, format string, resp taskmatch.Response) error {
	switch format {
	case FormatTable, "":
		return Table(w, resp)
	case FormatJSON:
		return JSON(w, resp)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// JSON writes resp as indented JSON.
func JSON(w io.Writer, resp taskmatch.Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

// Table writes one row per recommendation, best match first.
func Table(w io.Writer, resp taskmatch.Response) error {
	if _, err := fmt.Fprintf(w, "Task: %s\n", resp.Task); err != nil {
		return err
	}
	if len(resp.Recommendations) == 0 {
		_, err := fmt.Fprintln(w, "No candidates.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "ID", "Name", "Score", "Skills")
	for i, rec := range resp.Recommendations {
		row := []string{
			strconv.Itoa(i + 1),
			rec.User.ID.String(),
			rec.User.Name,
			FormatScore(rec.Score),
			truncate(strings.Join(rec.Skills, ", "), 60),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// FormatScore prints a score with four decimals.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes-3]) + "..."
}
