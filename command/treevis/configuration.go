// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/configuration"
	"github.com/bitmark-inc/treevis/fault"
	"github.com/bitmark-inc/treevis/util"
)

// basic defaults
const (
	defaultOutputDirectory = "." // current directory unless told otherwise
	defaultFileType        = "svg"

	defaultLogDirectory = "."
	defaultLogFile      = "treevis.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "critical"
)

// to hold log levels
type LoglevelMap map[string]string

type Configuration struct {
	OutputDirectory string               `gluamapper:"output_directory" json:"output_directory"`
	FileType        string               `gluamapper:"file_type" json:"file_type"`
	Intermediate    bool                 `gluamapper:"intermediate" json:"intermediate"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read and decode the configuration
//
// an empty file name skips the file and keeps the defaults; command
// line options are applied by the caller afterwards
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		OutputDirectory: defaultOutputDirectory,
		FileType:        defaultFileType,
		Intermediate:    false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels: LoglevelMap{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the directory of the file, so that relative
	// paths set in the file work from any current directory
	baseDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the directory of the config file
	mustBeAbsolute := []*string{
		&options.OutputDirectory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(baseDirectory, *f)
	}

	return options, nil
}

// check the configuration and prepare the log directory
//
// called after any command line overrides have been applied
func (options *Configuration) verify() error {

	if "" == options.OutputDirectory || "~" == options.OutputDirectory {
		return fault.ErrRequiredOutputDirectory
	}
	options.OutputDirectory = filepath.Clean(options.OutputDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.EnsureDirectoryExists(options.OutputDirectory) {
		return fault.ErrOutputDirPath
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("log file: %q is not a plain name", options.Logging.File)
	}

	// make absolute and create the log directory if it does not
	// already exist
	cwd, err := os.Getwd()
	if nil != err {
		return err
	}
	options.Logging.Directory = util.EnsureAbsolute(cwd, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0700)
}
