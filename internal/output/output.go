// Package output renders CLI results as human tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Format selects the output rendering mode.
type Format string

const (
	// FormatTable renders human-readable aligned tables.
	FormatTable Format = "table"
	// FormatJSON renders machine-readable JSON.
	FormatJSON Format = "json"
)

// ParseFormat normalizes a --output flag value.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(raw) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", raw)
	}
}

// Writer renders values in the selected format.
type Writer struct {
	format Format
	out    io.Writer
}

// New returns a Writer targeting stdout.
func New(format Format) *Writer {
	return &Writer{format: format, out: os.Stdout}
}

// NewTo returns a Writer targeting the given stream.
func NewTo(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// IsJSON reports whether the writer renders JSON.
func (w *Writer) IsJSON() bool {
	return w.format == FormatJSON
}

// Write renders v: pretty JSON in JSON mode, fmt.Fprintln otherwise.
func (w *Writer) Write(v any) error {
	if w.format == FormatJSON {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w.out, v)
	return err
}

// Table renders an aligned table in table mode, or rows as JSON objects
// keyed by header in JSON mode.
func (w *Writer) Table(headers []string, rows [][]string) error {
	if w.format == FormatJSON {
		objs := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]string, len(headers))
			for i, h := range headers {
				if i < len(row) {
					obj[strings.ToLower(strings.ReplaceAll(h, " ", "_"))] = row[i]
				}
			}
			objs = append(objs, obj)
		}
		return w.Write(objs)
	}

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
