// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/fault"
	"github.com/bitmark-inc/treevis/util"
)

// a sample configuration with relative paths
const configText = `
local M = {}

M.output_directory = "out"
M.file_type = "pdf"
M.intermediate = true

M.logging = {
    directory = "log",
    size = 65536,
    count = 5,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeTestConfig(t *testing.T, name string, text string) string {
	fileName := filepath.Join(dir, name)
	err := os.WriteFile(fileName, []byte(text), 0600)
	assert.NoError(t, err, "write configuration file")
	return fileName
}

func TestConfigurationDefaults(t *testing.T) {
	options, err := getConfiguration("")
	assert.NoError(t, err, "get configuration")

	assert.Equal(t, defaultOutputDirectory, options.OutputDirectory, "output directory")
	assert.Equal(t, defaultFileType, options.FileType, "file type")
	assert.False(t, options.Intermediate, "intermediate")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.True(t, options.Logging.Console, "console")
	assert.Equal(t, defaultLogLevel, options.Logging.Levels[logger.DefaultTag], "log level")
}

func TestConfigurationFile(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(dir, 0700)
	defer removeFiles()

	fileName := writeTestConfig(t, "treevis.conf", configText)

	options, err := getConfiguration(fileName)
	assert.NoError(t, err, "get configuration")

	// relative paths resolve against the configuration file directory
	base, err := filepath.Abs(dir)
	assert.NoError(t, err, "absolute base")

	assert.Equal(t, filepath.Join(base, "out"), options.OutputDirectory, "output directory")
	assert.Equal(t, "pdf", options.FileType, "file type")
	assert.True(t, options.Intermediate, "intermediate")
	assert.Equal(t, filepath.Join(base, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, 65536, options.Logging.Size, "log size")
	assert.Equal(t, 5, options.Logging.Count, "log count")
	assert.False(t, options.Logging.Console, "console")
	assert.Equal(t, "info", options.Logging.Levels[logger.DefaultTag], "log level")

	// items absent from the file keep their defaults
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
}

func TestConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(dir, "absent.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "get configuration")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestConfigurationBrokenFile(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(dir, 0700)
	defer removeFiles()

	fileName := writeTestConfig(t, "broken.conf", "return 42\n")

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrConfigResultIsNotTable, err, "get configuration")
}

func TestVerify(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(dir, 0700)
	defer removeFiles()

	logDirectory := filepath.Join(dir, "log")

	// empty output directory value
	options, _ := getConfiguration("")
	options.OutputDirectory = ""
	options.Logging.Directory = logDirectory
	err := options.verify()
	assert.Equal(t, fault.ErrRequiredOutputDirectory, err, "verify")

	// output directory was never created
	options, _ = getConfiguration("")
	options.OutputDirectory = filepath.Join(dir, "absent")
	options.Logging.Directory = logDirectory
	err = options.verify()
	assert.Equal(t, fault.ErrOutputDirPath, err, "verify")

	// a plain file cannot act as the output directory
	plainFile := filepath.Join(dir, "plain")
	err = os.WriteFile(plainFile, []byte("x"), 0600)
	assert.NoError(t, err, "write file")
	options, _ = getConfiguration("")
	options.OutputDirectory = plainFile
	options.Logging.Directory = logDirectory
	err = options.verify()
	assert.Equal(t, fault.ErrOutputDirPath, err, "verify")

	// log file must be a plain name
	options, _ = getConfiguration("")
	options.OutputDirectory = dir
	options.Logging.Directory = logDirectory
	options.Logging.File = filepath.Join("log", "treevis.log")
	err = options.verify()
	assert.Error(t, err, "verify")

	// acceptable settings create the log directory
	options, _ = getConfiguration("")
	options.OutputDirectory = dir
	options.Logging.Directory = logDirectory
	err = options.verify()
	assert.NoError(t, err, "verify")
	assert.True(t, util.EnsureDirectoryExists(logDirectory), "log directory")
	assert.True(t, filepath.IsAbs(options.Logging.Directory), "absolute log directory")
}
