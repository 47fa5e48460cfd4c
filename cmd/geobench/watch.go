// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the time waited after a change for further changes before
// running the benchmarks again.
const debounce = 200 * time.Millisecond

func watch(args []string) error {
	c, err := parseRunFlags("watch", args)
	if err != nil {
		return err
	}
	if c.Scripts == "" {
		return errors.New("flag -scripts is required")
	}
	file, err := newWatchedFile(c.Scripts)
	if err != nil {
		return err
	}
	defer file.Close()
	for {
		if err := runBenchmarks(c, os.Stderr); err != nil {
			stderr("\033[1;31m" + err.Error() + "\033[0m")
		}
		stderr("", "Watching "+c.Scripts+" for changes", "Press Ctrl+C to stop", "")
		if !file.wait() {
			return nil
		}
	}
}

// watchedFile watches a file for changes.
//
// The directory of the file is watched instead of the file, so that changes
// are seen also when an editor replaces the file. Changes that occur while
// nobody is waiting are coalesced into one.
type watchedFile struct {
	name    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	Changed chan string
	Errors  chan error
}

func newWatchedFile(name string) (*watchedFile, error) {
	name, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(name); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(name)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	file := &watchedFile{
		name:    name,
		watcher: watcher,
		done:    make(chan struct{}),
		Changed: make(chan string, 1),
		Errors:  make(chan error, 1),
	}
	go file.loop()
	return file, nil
}

// loop forwards the events of the watcher until the file is closed.
func (file *watchedFile) loop() {
	for {
		select {
		case event, ok := <-file.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != file.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				select {
				case file.Changed <- event.Name:
				default:
				}
			}
		case err, ok := <-file.watcher.Errors:
			if !ok {
				return
			}
			select {
			case file.Errors <- err:
			default:
			}
		case <-file.done:
			return
		}
	}
}

// wait waits for the file to change. Changes that follow within the debounce
// time are coalesced. It returns false if the file has been closed.
func (file *watchedFile) wait() bool {
	for {
		select {
		case <-file.Changed:
			for {
				select {
				case <-file.Changed:
				case <-time.After(debounce):
					return true
				case <-file.done:
					return false
				}
			}
		case err := <-file.Errors:
			stderr("watch: " + err.Error())
		case <-file.done:
			return false
		}
	}
}

// Close stops watching the file. A pending wait returns false.
func (file *watchedFile) Close() error {
	select {
	case <-file.done:
		return nil
	default:
	}
	close(file.done)
	return file.watcher.Close()
}
