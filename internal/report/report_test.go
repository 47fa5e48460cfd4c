// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/open2b/geobench"
	"github.com/open2b/geobench/engine"
	"github.com/open2b/geobench/workload"
)

func testResults() []geobench.Result {
	return []geobench.Result{
		{
			Scenario:    geobench.Scenario{Engine: engine.Scriggo{}, Profile: workload.Full, Path: workload.Native},
			N:           100,
			Iterations:  2000,
			Elapsed:     time.Second,
			Sum:         5022,
			AllocsPerOp: 3,
			BytesPerOp:  48,
		},
		{
			Scenario:   geobench.Scenario{Engine: engine.Tengo{}, Profile: workload.Reduced, Path: workload.Table},
			N:          1000,
			Iterations: 50,
			Elapsed:    500 * time.Millisecond,
			Sum:        5345,
		},
	}
}

func testReport() *Report {
	r := New(testResults())
	r.Created = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r.GoVersion = "go1.22.5"
	r.Engines = map[string]string{"scriggo": "v0.54.0", "tengo": "v2.17.0"}
	return r
}

func TestNew(t *testing.T) {
	r := New(testResults())
	want := []Row{
		{
			Scenario:       "scriggo/full/native",
			Engine:         "scriggo",
			Profile:        "full",
			Path:           "native",
			N:              100,
			Iterations:     2000,
			Elapsed:        time.Second,
			Items:          200000,
			ItemsPerSecond: 200000,
			NsPerOp:        500000,
			AllocsPerOp:    3,
			BytesPerOp:     48,
			Sum:            5022,
		},
		{
			Scenario:       "tengo/reduced/table",
			Engine:         "tengo",
			Profile:        "reduced",
			Path:           "table",
			N:              1000,
			Iterations:     50,
			Elapsed:        500 * time.Millisecond,
			Items:          50000,
			ItemsPerSecond: 100000,
			NsPerOp:        10000000,
			Sum:            5345,
		},
	}
	if diff := cmp.Diff(want, r.Rows); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
	if len(r.Engines) != 2 {
		t.Fatalf("expecting 2 engines, got %v", r.Engines)
	}
}

func TestMarkdown(t *testing.T) {
	want := "# geobench\n\n" +
		"go1.22.5, scriggo v0.54.0, tengo v2.17.0\n\n" +
		"| Scenario | n | Iterations | ns/op | items/s | allocs/op | B/op | Sum |\n" +
		"|---|---:|---:|---:|---:|---:|---:|---:|\n" +
		"| scriggo/full/native | 100 | 2000 | 500000 | 200000 | 3 | 48 | 5022 |\n" +
		"| tengo/reduced/table | 1000 | 50 | 10000000 | 100000 | 0 | 0 | 5345 |\n"
	if diff := cmp.Diff(want, string(testReport().Markdown())); diff != "" {
		t.Fatalf("unexpected markdown (-want +got):\n%s", diff)
	}
}

func TestWriteHTML(t *testing.T) {
	var b bytes.Buffer
	if err := testReport().Write(&b, "html"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	html := b.String()
	for _, s := range []string{"<h1>geobench</h1>", "<table>", "<th>Scenario</th>", "<td>scriggo/full/native</td>", "</html>"} {
		if !strings.Contains(html, s) {
			t.Errorf("expecting %q in HTML output", s)
		}
	}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := testReport().Write(&b, "text"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	text := b.String()
	if !strings.HasPrefix(text, "go1.22.5, scriggo v0.54.0, tengo v2.17.0\n") {
		t.Fatalf("unexpected summary line in %q", text)
	}
	for _, s := range []string{"Scenario", "items/s", "scriggo/full/native", "tengo/reduced/table", "200000", "5345"} {
		if !strings.Contains(text, s) {
			t.Errorf("expecting %q in text output", s)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := testReport().Write(&bytes.Buffer{}, "pdf")
	if err == nil || err.Error() != `report: unknown format "pdf"` {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestYAML(t *testing.T) {
	r := testReport()
	name := filepath.Join(t.TempDir(), "report.yaml")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.WriteYAML(f); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
	_, err = ReadYAML(strings.NewReader("rows: 5\n"))
	if err == nil {
		t.Fatal("expecting error, got no error")
	}
}

func TestEngineVersions(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "github.com/open2b/scriggo", Version: "v0.54.0"},
			{Path: "github.com/traefik/yaegi", Version: "v0.16.1", Replace: &debug.Module{Path: "../yaegi", Version: "(devel)"}},
			{Path: "github.com/d5/tengo/v2", Version: "v2.17"},
		},
	}
	want := map[string]string{"scriggo": "v0.54.0", "yaegi": "unknown", "tengo": "v2.17.0"}
	if diff := cmp.Diff(want, engineVersions(info, engine.All())); diff != "" {
		t.Fatalf("unexpected versions (-want +got):\n%s", diff)
	}
	want = map[string]string{"scriggo": "unknown", "yaegi": "unknown", "tengo": "unknown"}
	if diff := cmp.Diff(want, engineVersions(nil, engine.All())); diff != "" {
		t.Fatalf("unexpected versions (-want +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	base := testReport()
	head := testReport()
	head.Rows = head.Rows[:1]
	head.Rows[0].ItemsPerSecond = 250000
	head.Rows = append(head.Rows, Row{Scenario: "yaegi/full/table", N: 100, ItemsPerSecond: 10})
	head.Engines = map[string]string{"scriggo": "v0.55.0", "tengo": "(devel)"}
	head.GoVersion = "go1.23.0"
	c := Compare(base, head)
	wantChanges := []Change{{Scenario: "scriggo/full/native", N: 100, Base: 200000, Head: 250000}}
	if diff := cmp.Diff(wantChanges, c.Changes); diff != "" {
		t.Fatalf("unexpected changes (-want +got):\n%s", diff)
	}
	if d := c.Changes[0].Delta(); d != 0.25 {
		t.Fatalf("expecting delta 0.25, got %v", d)
	}
	wantMissing := []string{"yaegi/full/table n=100 only in head", "tengo/reduced/table n=1000 only in base"}
	if diff := cmp.Diff(wantMissing, c.Missing); diff != "" {
		t.Fatalf("unexpected missing (-want +got):\n%s", diff)
	}
	wantNotes := []string{
		"scriggo upgraded: v0.54.0 -> v0.55.0",
		"tengo changed: v2.17.0 -> (devel)",
		"go: go1.22.5 -> go1.23.0",
	}
	if diff := cmp.Diff(wantNotes, c.Notes); diff != "" {
		t.Fatalf("unexpected notes (-want +got):\n%s", diff)
	}
	var b bytes.Buffer
	if err := c.WriteText(&b); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, s := range []string{"+25.00%", "missing: yaegi/full/table n=100 only in head", "note: scriggo upgraded"} {
		if !strings.Contains(b.String(), s) {
			t.Errorf("expecting %q in output %q", s, b.String())
		}
	}
	if (Change{Head: 10}).Delta() != 0 {
		t.Fatal("expecting zero delta for zero base")
	}
}
