// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the configuration of a benchmark run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/open2b/geobench"
	"github.com/open2b/geobench/engine"
	"github.com/open2b/geobench/workload"
)

// Formats contains the output formats.
var Formats = []string{"text", "markdown", "html", "yaml"}

// Config is the configuration of a run.
type Config struct {
	Engines   []string `yaml:"engines"`
	Profiles  []string `yaml:"profiles"`
	Paths     []string `yaml:"paths"`
	Sizes     []int    `yaml:"sizes"`
	BenchTime string   `yaml:"benchtime"`
	Scripts   string   `yaml:"scripts"` // txtar file overlaying the embedded scripts.
	Format    string   `yaml:"format"`
	Output    string   `yaml:"output"` // output file; empty for standard output.
}

// Default returns the default configuration: all engines, profiles and
// paths, the default sizes, one second for each measurement and text
// output on standard output.
func Default() *Config {
	c := &Config{
		Engines:   engine.Names(),
		Sizes:     append([]int(nil), geobench.Sizes...),
		BenchTime: "1s",
		Format:    "text",
	}
	for _, p := range workload.Profiles() {
		c.Profiles = append(c.Profiles, string(p))
	}
	for _, p := range workload.Paths() {
		c.Paths = append(c.Paths, string(p))
	}
	return c
}

// Parse parses a YAML configuration. Fields not present in data have their
// default value. Unknown fields are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Read reads and parses the named configuration file.
func Read(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Engines) == 0 {
		return errors.New("config: no engines")
	}
	for _, name := range c.Engines {
		if _, err := engine.Lookup(name); err != nil {
			return fmt.Errorf("config: unknown engine %q", name)
		}
	}
	if len(c.Profiles) == 0 {
		return errors.New("config: no profiles")
	}
	for _, name := range c.Profiles {
		if _, err := workload.ParseProfile(name); err != nil {
			return fmt.Errorf("config: unknown profile %q", name)
		}
	}
	if len(c.Paths) == 0 {
		return errors.New("config: no paths")
	}
	for _, name := range c.Paths {
		if _, err := workload.ParsePath(name); err != nil {
			return fmt.Errorf("config: unknown path %q", name)
		}
	}
	if len(c.Sizes) == 0 {
		return errors.New("config: no sizes")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("config: size %d is not positive", n)
		}
	}
	if !validBenchTime(c.BenchTime) {
		return fmt.Errorf("config: invalid benchtime %q", c.BenchTime)
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("config: unknown format %q, valid formats are %s", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// validBenchTime reports whether t is a positive duration or a positive
// number of iterations followed by 'x'.
func validBenchTime(t string) bool {
	if strings.HasSuffix(t, "x") {
		n, err := strconv.Atoi(t[:len(t)-1])
		return err == nil && n > 0
	}
	d, err := time.ParseDuration(t)
	return err == nil && d > 0
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Scenarios returns the scenarios of the configuration. scripts is the set
// of scripts used by the scenarios.
func (c *Config) Scenarios(scripts *workload.Set) ([]geobench.Scenario, error) {
	engines := make([]engine.Engine, len(c.Engines))
	for i, name := range c.Engines {
		e, err := engine.Lookup(name)
		if err != nil {
			return nil, err
		}
		engines[i] = e
	}
	profiles := make([]workload.Profile, len(c.Profiles))
	for i, name := range c.Profiles {
		p, err := workload.ParseProfile(name)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}
	paths := make([]workload.Path, len(c.Paths))
	for i, name := range c.Paths {
		p, err := workload.ParsePath(name)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return geobench.Scenarios(engines, profiles, paths, scripts), nil
}

// LoadScripts returns the scripts of the configuration: the embedded
// scripts overlaid by those in the Scripts file, if any.
func (c *Config) LoadScripts() (*workload.Set, error) {
	if c.Scripts == "" {
		return workload.Default(), nil
	}
	set, err := workload.ReadFile(c.Scripts)
	if err != nil {
		return nil, err
	}
	return workload.Default().Overlay(set), nil
}

// ParseList parses a comma separated list, as "scriggo,tengo".
func ParseList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// ParseSizes parses a comma separated list of sizes, as "100,1000".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, item := range ParseList(s) {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("config: invalid size %q", item)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
