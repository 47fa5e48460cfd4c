// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geobench measures the throughput of geometric workloads executed
// by embedded script engines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/open2b/geobench/internal/report"
)

func main() {
	runCommand(os.Args...)
}

// TestEnvironment is true when testing geobench, false otherwise.
var TestEnvironment = false

// exit causes the current program to exit with the given status code. If
// running in a test environment, every exit call is a no-op.
func exit(status int) {
	if !TestEnvironment {
		os.Exit(status)
	}
}

// stderr prints lines on stderr.
func stderr(lines ...string) {
	for _, l := range lines {
		fmt.Fprint(os.Stderr, l+"\n")
	}
}

// exitError prints msg on stderr with a bold red color and exits with status
// code 1.
func exitError(format string, a ...interface{}) {
	msg := fmt.Errorf(format, a...)
	stderr("\033[1;31m"+msg.Error()+"\033[0m", `exit status 1`)
	exit(1)
}

// runCommand runs command 'geobench' with given args. First argument must be
// the executable name.
func runCommand(args ...string) {

	// No command provided.
	if len(args) == 1 {
		commandsHelp["geobench"]()
		exit(0)
		return
	}

	cmdArg := args[1]

	cmd, ok := commands[cmdArg]
	if !ok {
		stderr(
			fmt.Sprintf("geobench %s: unknown command", cmdArg),
			`Run 'geobench help' for usage.`,
		)
		exit(1)
		return
	}
	err := cmd(args[2:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			exit(0)
			return
		}
		exitError("geobench %s: %s", cmdArg, err)
	}
}

// commandsHelp maps a command name to a function that prints help for that
// command.
var commandsHelp = map[string]func(){
	"geobench": func() {
		stderr(
			`Geobench measures geometric workloads executed by embedded script engines`,
			``,
			`Usage:`,
			``,
			`	   geobench <command> [arguments]`,
			``,
			`The commands are:`,
			``,
			`	   compare     compare two reports`,
			`	   list        list the scenarios`,
			`	   run         run the benchmarks`,
			`	   version     print Go and engine versions`,
			`	   watch       run the benchmarks every time a script file changes`,
			``,
			`Use "geobench help <command>" for more information about a command.`,
		)
	},
	"compare": func() {
		stderr(
			`usage: geobench compare base.yaml head.yaml`,
			``,
			`Compare compares the throughput of two reports written by`,
			`'geobench run -format yaml'.`,
		)
	},
	"list": func() {
		stderr(
			`usage: geobench list [run flags]`,
			``,
			`List prints the scenarios and the sizes measured by 'geobench run'`,
			`with the same flags.`,
		)
	},
	"run": func() {
		stderr(
			`usage: geobench run [-c config.yaml] [-engine list] [-profile list] [-path list]`,
			`                    [-n list] [-benchtime t] [-scripts file.txtar] [-format f] [-o file]`,
			``,
			`Run measures every combination of engine, profile and path for every n`,
			`and writes a report. Lists are comma separated.`,
			``,
			`Engines:  scriggo, yaegi, tengo`,
			`Profiles: full, reduced`,
			`Paths:    native, table`,
			`Formats:  text, markdown, html, yaml`,
		)
	},
	"version": func() {
		stderr(
			`usage: geobench version`,
		)
	},
	"watch": func() {
		stderr(
			`usage: geobench watch -scripts file.txtar [run flags]`,
			``,
			`Watch runs the benchmarks and runs them again every time the scripts`,
			`file is written. Press Ctrl+C to stop.`,
		)
	},
}

// commands maps a command name to a function that executes that command.
// Commands are called by command-line using:
//
//	geobench command [arguments]
var commands = map[string]func(args []string) error{
	"compare": compare,
	"help":    help,
	"list":    list,
	"run":     run,
	"version": version,
	"watch":   watch,
}

func help(args []string) error {
	if len(args) == 0 {
		commandsHelp["geobench"]()
		return nil
	}
	topic := args[0]
	h, ok := commandsHelp[topic]
	if !ok {
		return fmt.Errorf("unknown help topic %q. Run 'geobench help'", topic)
	}
	h()
	return nil
}

func version(args []string) error {
	if len(args) > 0 {
		return errors.New("too many arguments")
	}
	versions := report.EngineVersions()
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("Go version:  %s\n", runtime.Version())
	for _, name := range names {
		fmt.Printf("%-12s %s\n", name+":", versions[name])
	}
	return nil
}
