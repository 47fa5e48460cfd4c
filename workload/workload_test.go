// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	set := Default()
	want := []string{
		"go/full/native", "go/full/table", "go/reduced/native", "go/reduced/table",
		"tengo/full/native", "tengo/full/table", "tengo/reduced/native", "tengo/reduced/table",
	}
	if diff := cmp.Diff(want, set.Names()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
	for _, lang := range Langs() {
		for _, profile := range Profiles() {
			for _, path := range Paths() {
				src, err := set.Source(lang, profile, path)
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if len(src) == 0 {
					t.Fatalf("%s/%s/%s: empty source", lang, profile, path)
				}
			}
		}
	}
}

func TestTengoScriptsDeclareEntryPoint(t *testing.T) {
	for _, profile := range Profiles() {
		for _, path := range Paths() {
			src, _ := Default().Source(Tengo, profile, path)
			if !strings.HasPrefix(string(src), "do_work := func(n) {") {
				t.Fatalf("%s/%s: script does not declare do_work", profile, path)
			}
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		src string
		err string
	}{
		{"-- go/full/native --\nreturn 0\n", ""},
		{"comment\n-- tengo/reduced/table --\ndo_work := func(n) { return 0.0 }\n", ""},
		{"-- go/full --\n", `workload: file "go/full": name must have the form lang/profile/path`},
		{"-- lua/full/native --\n", `workload: file "lua/full/native": unknown language "lua"`},
		{"-- go/half/native --\n", `workload: file "go/half/native": unknown profile "half"`},
		{"-- go/full/userdata --\n", `workload: file "go/full/userdata": unknown path "userdata"`},
		{"-- go/full/native --\n-- go/full/native --\n", `workload: file "go/full/native" is repeated`},
	}
	for _, cas := range cases {
		_, err := Parse([]byte(cas.src))
		if cas.err == "" {
			if err != nil {
				t.Errorf("%q: unexpected error: %s", cas.src, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%q: expecting error %q, got no error", cas.src, cas.err)
		} else if err.Error() != cas.err {
			t.Errorf("%q: expecting error %q, got %q", cas.src, cas.err, err)
		}
	}
}

func TestSourceNotFound(t *testing.T) {
	set, err := Parse([]byte("-- go/full/native --\nreturn 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = set.Source(Go, Reduced, Table)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expecting ErrNotFound, got %v", err)
	}
	if err.Error() != "workload: script not found: go/reduced/table" {
		t.Fatalf("unexpected error message %q", err)
	}
}

func TestOverlay(t *testing.T) {
	o, err := Parse([]byte("-- go/full/native --\nreturn 42\n"))
	if err != nil {
		t.Fatal(err)
	}
	set := Default().Overlay(o)
	src, err := set.Source(Go, Full, Native)
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != "return 42\n" {
		t.Fatalf("expecting overlaid source, got %q", src)
	}
	if _, err := set.Source(Tengo, Reduced, Table); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// The default set is not modified.
	src, _ = Default().Source(Go, Full, Native)
	if string(src) == "return 42\n" {
		t.Fatal("default set has been modified")
	}
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scripts.txtar")
	err := os.WriteFile(name, []byte("-- go/reduced/native --\nreturn 1\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	set, err := ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"go/reduced/native"}, set.Names()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txtar"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expecting os.ErrNotExist, got %v", err)
	}
}

func TestParseProfileAndPath(t *testing.T) {
	if p, err := ParseProfile("reduced"); err != nil || p != Reduced {
		t.Fatalf("expecting reduced, got %q (%v)", p, err)
	}
	if _, err := ParseProfile("Full"); err == nil {
		t.Fatal("expecting error, got no error")
	}
	if p, err := ParsePath("table"); err != nil || p != Table {
		t.Fatalf("expecting table, got %q (%v)", p, err)
	}
	if _, err := ParsePath("tables"); err == nil {
		t.Fatal("expecting error, got no error")
	}
}
