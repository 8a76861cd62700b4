/*
NAME
  eldritchwire-decode

DESCRIPTION
  eldritchwire-decode reads a raw command frame from a file or stdin and
  prints the decoded records, one per line.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"github.com/ekshore/eldritchwire/frame"
	"github.com/pkg/errors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// config holds the CLI's runtime options, parsed from flags.
type config struct {
	inputPath      string
	logPath        string
	boundsChecked  bool
	ignoreNDFilter bool
	tolerant       bool
}

func (c *config) Validate() error {
	if c.inputPath == "" {
		return errors.New("eldritchwire-decode: -in is required (or pass - for stdin)")
	}
	return nil
}

func parseFlags() *config {
	c := &config{}
	flag.StringVar(&c.inputPath, "in", "", "path to a raw frame file, or - for stdin")
	flag.StringVar(&c.logPath, "log", "", "log file path; empty logs to stderr")
	flag.BoolVar(&c.boundsChecked, "bounds-checked", true, "enforce declared numeric bounds")
	flag.BoolVar(&c.ignoreNDFilter, "ignore-nd-filter", false, "treat video ND filter stop as an action variant")
	flag.BoolVar(&c.tolerant, "tolerant", false, "terminate cleanly on trailing truncation instead of failing")
	flag.Parse()
	return c
}

func newLogger(c *config) *logging.Logger {
	var w io.Writer = os.Stderr
	if c.logPath != "" {
		w = &lumberjack.Logger{Filename: c.logPath, MaxSize: 10, MaxBackups: 3}
	}
	return logging.New(logging.Info, w, false)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	cfg := parseFlags()
	log := newLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err.Error())
	}

	data, err := readInput(cfg.inputPath)
	if err != nil {
		log.Fatal("read input failed", "error", errors.Wrap(err, "eldritchwire-decode").Error())
	}

	records, err := frame.Parse(data,
		frame.WithBoundsChecked(cfg.boundsChecked),
		frame.WithIgnoreNDFilter(cfg.ignoreNDFilter),
		frame.WithTolerant(cfg.tolerant),
	)
	if err != nil {
		log.Fatal("parse failed", "error", err.Error())
	}

	for _, r := range records {
		fmt.Printf("device=%d command_id=%d category=%v %#v\n", r.DeviceID, r.CommandID, r.Command.Category(), r.Command)
	}
	log.Info("decode complete", "records", fmt.Sprint(len(records)))
}
