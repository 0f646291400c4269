// Copyright 2025 The Keyboard Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the keyboard autocompletion CLI.

keyboard trains a frequency index on a text corpus and then completes word
fragments against it. Words are ranked by how often they appeared in the
corpus; words seen equally often are ordered reverse-alphabetically.

# Usage

Train on a file and complete fragments typed on stdin:

	keyboard passage.txt

Every input line is answered with the four best candidates:

	thi
	"thing" (2), "this" (1), "third" (1), "think" (1)

A directory can be given instead of a file; every file matching the
configured pattern (default *.txt) is read in name order.

Run the msgpack IPC server instead of the line loop:

	keyboard serve passage.txt

# Configuration

Defaults are read from a TOML file, created on first use in the user config
dir (~/.config/keyboard/config.toml on Linux) unless --config points
elsewhere:

	[cli]
	limit = 4

	[server]
	max_limit = 64
	max_prefix = 60
	allow_train = true

	[train]
	max_bytes = 0
	pattern = "*.txt"

# Flags

	-d, --debug     log debug output with timestamps to stderr
	    --config    path to a config file
	-n, --limit     candidates printed per line (default from config)
	-p, --prompt    log a "> " prompt before each read
	    --version   show version info

Without a training source keyboard prints its usage and exits with status 1.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const (
	Version = "0.1.0"
	AppName = "keyboard"
	gh      = "https://github.com/timhillgit/asymmetrik"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
