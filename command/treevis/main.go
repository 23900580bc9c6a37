// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/dotfile"
	"github.com/bitmark-inc/treevis/version"
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "intermediate", HasArg: getoptions.NO_ARGUMENT, Short: 'i'},
		{Long: "output-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
		{Long: "file-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--intermediate] [--config-file=FILE] [--output-directory=DIR] [--file-type=svg|pdf|dotfile] [--] value...", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file is possible, %d were specified", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line options override the configuration file
	if len(options["output-directory"]) > 0 {
		masterConfiguration.OutputDirectory = options["output-directory"][0]
	}
	if len(options["file-type"]) > 0 {
		masterConfiguration.FileType = options["file-type"][0]
	}
	if len(options["intermediate"]) > 0 {
		masterConfiguration.Intermediate = true
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "info"
	}
	if len(options["quiet"]) > 0 {
		masterConfiguration.Logging.Console = false
	}

	format, err := dotfile.ParseFormat(masterConfiguration.FileType)
	if nil != err {
		exitwithstatus.Message("%s: file type: %q  error: %s", program, masterConfiguration.FileType, err)
	}

	if err := masterConfiguration.verify(); nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	// no values at all is still valid and renders an empty tree
	values, badArgument, err := parseValues(arguments)
	if nil != err {
		exitwithstatus.Message("%s: value: %q  error: %s", program, badArgument, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("%s: version: %s", program, version.Version)
	log.Debugf("configuration: %v", masterConfiguration)

	names, err := run(log, values, format, masterConfiguration)
	if nil != err {
		log.Criticalf("render failed with error: %s", err)
		exitwithstatus.Message("%s: render failed with error: %s", program, err)
	}

	if 0 == len(options["quiet"]) {
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "%s\n", name)
		}
	}

	log.Info("shutting down…")
}
