// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders and compares the results of benchmark runs.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/open2b/geobench"
)

// Row is a row of a report.
type Row struct {
	Scenario       string        `yaml:"scenario"`
	Engine         string        `yaml:"engine"`
	Profile        string        `yaml:"profile"`
	Path           string        `yaml:"path"`
	N              int           `yaml:"n"`
	Iterations     int           `yaml:"iterations"`
	Elapsed        time.Duration `yaml:"elapsed"`
	Items          int64         `yaml:"items"`
	ItemsPerSecond float64       `yaml:"items_per_second"`
	NsPerOp        int64         `yaml:"ns_per_op"`
	AllocsPerOp    int64         `yaml:"allocs_per_op"`
	BytesPerOp     int64         `yaml:"bytes_per_op"`
	Sum            float64       `yaml:"sum"`
}

// key returns the key identifying the row in a comparison.
func (r Row) key() string {
	return r.Scenario + " n=" + strconv.Itoa(r.N)
}

// Report is the report of a run.
type Report struct {
	Created   time.Time         `yaml:"created"`
	GoVersion string            `yaml:"go_version"`
	Engines   map[string]string `yaml:"engines"` // module versions by engine name.
	Rows      []Row             `yaml:"rows"`
}

// New returns a report of the given results.
func New(results []geobench.Result) *Report {
	r := &Report{
		Created:   time.Now().UTC().Truncate(time.Second),
		GoVersion: runtime.Version(),
		Engines:   map[string]string{},
		Rows:      make([]Row, len(results)),
	}
	versions := EngineVersions()
	for i, res := range results {
		name := res.Scenario.Engine.Name()
		r.Engines[name] = versions[name]
		var nsPerOp int64
		if res.Iterations > 0 {
			nsPerOp = res.Elapsed.Nanoseconds() / int64(res.Iterations)
		}
		r.Rows[i] = Row{
			Scenario:       res.Scenario.Name(),
			Engine:         name,
			Profile:        string(res.Scenario.Profile),
			Path:           string(res.Scenario.Path),
			N:              res.N,
			Iterations:     res.Iterations,
			Elapsed:        res.Elapsed,
			Items:          res.Items(),
			ItemsPerSecond: res.ItemsPerSecond(),
			NsPerOp:        nsPerOp,
			AllocsPerOp:    res.AllocsPerOp,
			BytesPerOp:     res.BytesPerOp,
			Sum:            res.Sum,
		}
	}
	return r
}

// Write writes the report in the given format: "text", "markdown", "html"
// or "yaml".
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "text":
		return r.WriteText(w)
	case "markdown":
		_, err := w.Write(r.Markdown())
		return err
	case "html":
		return r.WriteHTML(w)
	case "yaml":
		return r.WriteYAML(w)
	}
	return fmt.Errorf("report: unknown format %q", format)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

var columns = []string{"Scenario", "n", "Iterations", "ns/op", "items/s", "allocs/op", "B/op", "Sum"}

func (row Row) cells() []string {
	return []string{
		row.Scenario,
		strconv.Itoa(row.N),
		strconv.Itoa(row.Iterations),
		strconv.FormatInt(row.NsPerOp, 10),
		strconv.FormatFloat(row.ItemsPerSecond, 'f', 0, 64),
		strconv.FormatInt(row.AllocsPerOp, 10),
		strconv.FormatInt(row.BytesPerOp, 10),
		strconv.FormatFloat(row.Sum, 'g', -1, 64),
	}
}

// WriteText writes the report as a table for a terminal.
func (r *Report) WriteText(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			}
			return numberStyle
		})
	for _, row := range r.Rows {
		t.Row(row.cells()...)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", r.summary(), t.Render())
	return err
}

// summary returns a line with the Go version and the engine versions.
func (r *Report) summary() string {
	names := make([]string, 0, len(r.Engines))
	for name := range r.Engines {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(r.GoVersion)
	for _, name := range names {
		b.WriteString(", ")
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(r.Engines[name])
	}
	return b.String()
}

// Markdown returns the report as a Markdown document.
func (r *Report) Markdown() []byte {
	var b bytes.Buffer
	b.WriteString("# geobench\n\n")
	b.WriteString(r.summary())
	b.WriteString("\n\n|")
	for _, c := range columns {
		b.WriteString(" " + c + " |")
	}
	b.WriteString("\n|---|")
	for range columns[1:] {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for _, row := range r.Rows {
		b.WriteString("|")
		for _, c := range row.cells() {
			b.WriteString(" " + c + " |")
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteHTML writes the report as an HTML document.
func (r *Report) WriteHTML(w io.Writer) error {
	_, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>geobench</title></head>\n<body>\n")
	if err != nil {
		return err
	}
	err = markdown.Convert(r.Markdown(), w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}

// WriteYAML writes the report in YAML. It can be read back with ReadYAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads a report written by WriteYAML.
func ReadYAML(r io.Reader) (*Report, error) {
	var report Report
	err := yaml.NewDecoder(r).Decode(&report)
	if err != nil {
		return nil, fmt.Errorf("report: %s", err)
	}
	return &report, nil
}

// ReadFile reads the named report file.
func ReadFile(name string) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}
