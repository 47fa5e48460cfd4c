// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/open2b/geobench"
	"github.com/open2b/geobench/internal/config"
	"github.com/open2b/geobench/internal/report"
)

// runFlags are the flags of the run, list and watch commands. Flags with a
// value override the values of the configuration file.
type runFlags struct {
	config    string
	engines   string
	profiles  string
	paths     string
	sizes     string
	benchTime string
	scripts   string
	format    string
	output    string
}

// newFlagSet returns a flag set for the named command with the run flags.
func (f *runFlags) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		commandsHelp[name]()
		fs.PrintDefaults()
	}
	fs.StringVar(&f.config, "c", "", "configuration file")
	fs.StringVar(&f.engines, "engine", "", "engines, comma separated")
	fs.StringVar(&f.profiles, "profile", "", "profiles, comma separated")
	fs.StringVar(&f.paths, "path", "", "paths, comma separated")
	fs.StringVar(&f.sizes, "n", "", "values of n, comma separated")
	fs.StringVar(&f.benchTime, "benchtime", "", "run time of each measurement, as 1s or 100x")
	fs.StringVar(&f.scripts, "scripts", "", "txtar file overlaying the embedded scripts")
	fs.StringVar(&f.format, "format", "", "report format")
	fs.StringVar(&f.output, "o", "", "report file")
	return fs
}

// load returns the configuration with the flags applied.
func (f *runFlags) load() (*config.Config, error) {
	c := config.Default()
	if f.config != "" {
		var err error
		c, err = config.Read(f.config)
		if err != nil {
			return nil, err
		}
	}
	if f.engines != "" {
		c.Engines = config.ParseList(f.engines)
	}
	if f.profiles != "" {
		c.Profiles = config.ParseList(f.profiles)
	}
	if f.paths != "" {
		c.Paths = config.ParseList(f.paths)
	}
	if f.sizes != "" {
		sizes, err := config.ParseSizes(f.sizes)
		if err != nil {
			return nil, err
		}
		c.Sizes = sizes
	}
	if f.benchTime != "" {
		c.BenchTime = f.benchTime
	}
	if f.scripts != "" {
		c.Scripts = f.scripts
	}
	if f.format != "" {
		c.Format = f.format
	}
	if f.output != "" {
		c.Output = f.output
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseRunFlags parses the arguments of the named command.
func parseRunFlags(name string, args []string) (*config.Config, error) {
	var f runFlags
	fs := f.newFlagSet(name)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, errors.New("bad number of arguments")
	}
	return f.load()
}

func run(args []string) error {
	c, err := parseRunFlags("run", args)
	if err != nil {
		return err
	}
	return runBenchmarks(c, os.Stderr)
}

func list(args []string) error {
	c, err := parseRunFlags("list", args)
	if err != nil {
		return err
	}
	scripts, err := c.LoadScripts()
	if err != nil {
		return err
	}
	scenarios, err := c.Scenarios(scripts)
	if err != nil {
		return err
	}
	for _, s := range scenarios {
		for _, n := range c.Sizes {
			fmt.Printf("%s n=%d\n", s.Name(), n)
		}
	}
	return nil
}

// runBenchmarks measures the scenarios of c and writes the report. Progress
// is written to progress.
func runBenchmarks(c *config.Config, progress io.Writer) error {
	scripts, err := c.LoadScripts()
	if err != nil {
		return err
	}
	scenarios, err := c.Scenarios(scripts)
	if err != nil {
		return err
	}
	if err := geobench.SetBenchTime(c.BenchTime); err != nil {
		return err
	}
	results := make([]geobench.Result, 0, len(scenarios)*len(c.Sizes))
	for _, s := range scenarios {
		for _, n := range c.Sizes {
			_, _ = fmt.Fprintf(progress, "%s n=%d\n", s.Name(), n)
			r, err := geobench.Measure(s, n)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name(), err)
			}
			results = append(results, r)
		}
	}
	return writeReport(report.New(results), c.Format, c.Output)
}

// writeReport writes the report in the given format to the named file or,
// if name is empty, to the standard output.
func writeReport(r *report.Report, format, name string) error {
	if name == "" {
		return r.Write(os.Stdout, format)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = r.Write(f, format)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
