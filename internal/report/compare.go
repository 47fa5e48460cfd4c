// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/mod/semver"
)

// Change is the change of throughput of a scenario between two reports.
type Change struct {
	Scenario string
	N        int
	Base     float64 // items/s in the base report.
	Head     float64 // items/s in the head report.
}

// Delta returns the relative change of throughput, as 0.1 for 10% faster.
// It returns 0 if the base throughput is zero.
func (c Change) Delta() float64 {
	if c.Base == 0 {
		return 0
	}
	return (c.Head - c.Base) / c.Base
}

// Comparison is the comparison of two reports.
type Comparison struct {
	Changes []Change
	Missing []string // rows present in only one of the reports.
	Notes   []string // differences in the engine versions.
}

// Compare compares the head report with the base report. Rows are matched by
// scenario and n and are in the order of the head report.
func Compare(base, head *Report) *Comparison {
	c := &Comparison{}
	baseRows := make(map[string]Row, len(base.Rows))
	for _, row := range base.Rows {
		baseRows[row.key()] = row
	}
	seen := map[string]bool{}
	for _, row := range head.Rows {
		k := row.key()
		b, ok := baseRows[k]
		if !ok {
			c.Missing = append(c.Missing, k+" only in head")
			continue
		}
		seen[k] = true
		c.Changes = append(c.Changes, Change{Scenario: row.Scenario, N: row.N, Base: b.ItemsPerSecond, Head: row.ItemsPerSecond})
	}
	for _, row := range base.Rows {
		if k := row.key(); !seen[k] {
			c.Missing = append(c.Missing, k+" only in base")
		}
	}
	names := make([]string, 0, len(head.Engines))
	for name := range head.Engines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		bv, ok := base.Engines[name]
		if !ok {
			continue
		}
		if note := versionNote(name, bv, head.Engines[name]); note != "" {
			c.Notes = append(c.Notes, note)
		}
	}
	if base.GoVersion != head.GoVersion {
		c.Notes = append(c.Notes, fmt.Sprintf("go: %s -> %s", base.GoVersion, head.GoVersion))
	}
	return c
}

// versionNote returns a note describing the change of version of an engine,
// or the empty string if the version is the same.
func versionNote(name, base, head string) string {
	if base == head {
		return ""
	}
	what := "changed"
	if semver.IsValid(base) && semver.IsValid(head) {
		if semver.Compare(base, head) < 0 {
			what = "upgraded"
		} else {
			what = "downgraded"
		}
	}
	return fmt.Sprintf("%s %s: %s -> %s", name, what, base, head)
}

// WriteText writes the comparison as a table for a terminal.
func (c *Comparison) WriteText(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "n", "base items/s", "head items/s", "delta").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			}
			return numberStyle
		})
	for _, ch := range c.Changes {
		t.Row(
			ch.Scenario,
			strconv.Itoa(ch.N),
			strconv.FormatFloat(ch.Base, 'f', 0, 64),
			strconv.FormatFloat(ch.Head, 'f', 0, 64),
			fmt.Sprintf("%+.2f%%", ch.Delta()*100),
		)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	for _, m := range c.Missing {
		if _, err := fmt.Fprintf(w, "missing: %s\n", m); err != nil {
			return err
		}
	}
	for _, n := range c.Notes {
		if _, err := fmt.Fprintf(w, "note: %s\n", n); err != nil {
			return err
		}
	}
	return nil
}
