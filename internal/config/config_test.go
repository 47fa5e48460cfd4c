// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/open2b/geobench/workload"
)

func TestDefault(t *testing.T) {
	want := &Config{
		Engines:   []string{"scriggo", "yaegi", "tengo"},
		Profiles:  []string{"full", "reduced"},
		Paths:     []string{"native", "table"},
		Sizes:     []int{100, 1000, 10000},
		BenchTime: "1s",
		Format:    "text",
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Fatalf("unexpected default (-want +got):\n%s", diff)
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestParse(t *testing.T) {
	src := `
engines: [tengo]
profiles: [reduced]
sizes: [10, 20]
benchtime: 100x
format: markdown
output: report.md
`
	c, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := &Config{
		Engines:   []string{"tengo"},
		Profiles:  []string{"reduced"},
		Paths:     []string{"native", "table"},
		Sizes:     []int{10, 20},
		BenchTime: "100x",
		Format:    "markdown",
		Output:    "report.md",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src string
		err string
	}{
		{"engines: [lua]", `config: unknown engine "lua"`},
		{"engines: []", "config: no engines"},
		{"profiles: [half]", `config: unknown profile "half"`},
		{"paths: [userdata]", `config: unknown path "userdata"`},
		{"sizes: [100, 0]", "config: size 0 is not positive"},
		{"sizes: []", "config: no sizes"},
		{"benchtime: soon", `config: invalid benchtime "soon"`},
		{"benchtime: 0x", `config: invalid benchtime "0x"`},
		{"benchtime: -1s", `config: invalid benchtime "-1s"`},
		{"format: pdf", `config: unknown format "pdf", valid formats are text, markdown, html, yaml`},
		{"iterations: 3", "field iterations not found"},
	}
	for _, cas := range cases {
		_, err := Parse([]byte(cas.src))
		if err == nil {
			t.Errorf("%q: expecting error %q, got no error", cas.src, cas.err)
			continue
		}
		if !strings.Contains(err.Error(), cas.err) {
			t.Errorf("%q: expecting error %q, got %q", cas.src, cas.err, err)
		}
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "geobench.yaml")
	if err := os.WriteFile(name, []byte("sizes: [-1]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Read(name)
	if err == nil || !strings.HasPrefix(err.Error(), name+": ") {
		t.Fatalf("expecting error prefixed by file name, got %v", err)
	}
}

func TestScenarios(t *testing.T) {
	c := Default()
	c.Engines = []string{"yaegi"}
	c.Profiles = []string{"full"}
	scenarios, err := c.Scenarios(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var names []string
	for _, s := range scenarios {
		names = append(names, s.Name())
	}
	if diff := cmp.Diff([]string{"yaegi/full/native", "yaegi/full/table"}, names); diff != "" {
		t.Fatalf("unexpected scenarios (-want +got):\n%s", diff)
	}
}

func TestLoadScripts(t *testing.T) {
	c := Default()
	set, err := c.LoadScripts()
	if err != nil || set != workload.Default() {
		t.Fatalf("expecting default scripts, got %v (%v)", set, err)
	}
	c.Scripts = filepath.Join(t.TempDir(), "scripts.txtar")
	if err := os.WriteFile(c.Scripts, []byte("-- tengo/full/native --\ndo_work := func(n) { return 1.0 }\n"), 0644); err != nil {
		t.Fatal(err)
	}
	set, err = c.LoadScripts()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	src, _ := set.Source(workload.Tengo, workload.Full, workload.Native)
	if !strings.Contains(string(src), "return 1.0") {
		t.Fatalf("expecting overlaid script, got %q", src)
	}
	if len(set.Names()) != 8 {
		t.Fatalf("expecting 8 scripts, got %d", len(set.Names()))
	}
}

func TestParseLists(t *testing.T) {
	if diff := cmp.Diff([]string{"scriggo", "tengo"}, ParseList(" scriggo, ,tengo ")); diff != "" {
		t.Fatalf("unexpected list (-want +got):\n%s", diff)
	}
	sizes, err := ParseSizes("10,200")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]int{10, 200}, sizes); diff != "" {
		t.Fatalf("unexpected sizes (-want +got):\n%s", diff)
	}
	if _, err := ParseSizes("10,ten"); err == nil || err.Error() != `config: invalid size "ten"` {
		t.Fatalf("unexpected error %v", err)
	}
}
