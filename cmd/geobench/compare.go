// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/open2b/geobench/internal/report"
)

func compare(args []string) error {
	if len(args) != 2 {
		commandsHelp["compare"]()
		return errors.New("bad number of arguments")
	}
	base, err := report.ReadFile(args[0])
	if err != nil {
		return err
	}
	head, err := report.ReadFile(args[1])
	if err != nil {
		return err
	}
	return report.Compare(base, head).WriteText(os.Stdout)
}
