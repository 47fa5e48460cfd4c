// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workload provides the scripts executed by the benchmarks.
//
// A workload is a txtar archive. Each file holds the body of the do_work
// entry point for a language, a profile and a path, and it is named
// "lang/profile/path", for example "go/full/native".
package workload

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
)

//go:embed workload.txtar
var archive []byte

// Lang is the language of a script.
type Lang string

const (
	Go    Lang = "go"    // Go, as executed by scriggo and yaegi.
	Tengo Lang = "tengo" // Tengo.
)

// Profile is a set of arithmetic operations performed on each iteration.
type Profile string

const (
	// Full combines each pair of vectors with addition, subtraction, scalar
	// multiplication and scalar division.
	Full Profile = "full"
	// Reduced adds each pair of vectors and multiplies the components of
	// the result.
	Reduced Profile = "reduced"
)

// Path is the way the geometric values are represented in a script.
type Path string

const (
	Native Path = "native" // values of types registered by the host.
	Table  Path = "table"  // map literals of the language.
)

// Langs returns the languages.
func Langs() []Lang { return []Lang{Go, Tengo} }

// Profiles returns the profiles.
func Profiles() []Profile { return []Profile{Full, Reduced} }

// Paths returns the paths.
func Paths() []Path { return []Path{Native, Table} }

// ParseProfile parses a profile name.
func ParseProfile(s string) (Profile, error) {
	for _, p := range Profiles() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("workload: unknown profile %q", s)
}

// ParsePath parses a path name.
func ParsePath(s string) (Path, error) {
	for _, p := range Paths() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("workload: unknown path %q", s)
}

func parseLang(s string) (Lang, error) {
	for _, l := range Langs() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// ErrNotFound is returned by Source when a set does not have the requested
// script.
var ErrNotFound = errors.New("workload: script not found")

// Set is a set of scripts.
type Set struct {
	files map[string][]byte
}

var defaultSet *Set

func init() {
	var err error
	defaultSet, err = Parse(archive)
	if err != nil {
		panic(err)
	}
}

// Default returns the embedded set.
func Default() *Set {
	return defaultSet
}

// Parse parses a txtar archive and returns its set. File names must have the
// form "lang/profile/path" and cannot be repeated. The archive comment is
// ignored.
func Parse(data []byte) (*Set, error) {
	arch := txtar.Parse(data)
	set := &Set{files: make(map[string][]byte, len(arch.Files))}
	for _, file := range arch.Files {
		name := strings.TrimSpace(file.Name)
		if err := validName(name); err != nil {
			return nil, fmt.Errorf("workload: file %q: %s", name, err)
		}
		if _, ok := set.files[name]; ok {
			return nil, fmt.Errorf("workload: file %q is repeated", name)
		}
		set.files[name] = file.Data
	}
	return set, nil
}

// ReadFile reads the named txtar archive and returns its set.
func ReadFile(name string) (*Set, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return set, nil
}

func validName(name string) error {
	parts := strings.Split(name, "/")
	if len(parts) != 3 {
		return errors.New("name must have the form lang/profile/path")
	}
	if _, err := parseLang(parts[0]); err != nil {
		return err
	}
	if _, err := ParseProfile(parts[1]); err != nil {
		return fmt.Errorf("unknown profile %q", parts[1])
	}
	if _, err := ParsePath(parts[2]); err != nil {
		return fmt.Errorf("unknown path %q", parts[2])
	}
	return nil
}

func key(lang Lang, profile Profile, path Path) string {
	return string(lang) + "/" + string(profile) + "/" + string(path)
}

// Source returns the script for the given language, profile and path.
// If there is no such script, it returns an error that wraps ErrNotFound.
func (s *Set) Source(lang Lang, profile Profile, path Path) ([]byte, error) {
	k := key(lang, profile, path)
	src, ok := s.files[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}
	return src, nil
}

// Overlay returns a new set with the scripts of s replaced by those of o.
func (s *Set) Overlay(o *Set) *Set {
	set := &Set{files: make(map[string][]byte, len(s.files)+len(o.files))}
	for name, data := range s.files {
		set.files[name] = data
	}
	for name, data := range o.files {
		set.files[name] = data
	}
	return set
}

// Names returns the names of the scripts in the set, ordered by language,
// profile and path.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.files))
	for _, lang := range Langs() {
		for _, profile := range Profiles() {
			for _, path := range Paths() {
				k := key(lang, profile, path)
				if _, ok := s.files[k]; ok {
					names = append(names, k)
				}
			}
		}
	}
	return names
}
