// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/treevis/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testList := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "/var/log", "/var/log"},
		{"/data", ".", "/data"},
		{"/data", "./log/../run", "/data/run"},
		{"/data/", "log", "/data/log"},
	}

	for i, item := range testList {
		actual := util.EnsureAbsolute(item.directory, item.path)
		if item.expected != actual {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {
	const dir = "testing"
	_ = os.Mkdir(dir, 0700)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "present")
	err := os.WriteFile(fileName, []byte("x"), 0600)
	if nil != err {
		t.Fatalf("write: %q failed: %s", fileName, err)
	}

	if !util.EnsureFileExists(fileName) {
		t.Errorf("missing file: %q", fileName)
	}
	if util.EnsureFileExists(filepath.Join(dir, "absent")) {
		t.Error("found a file that was never created")
	}
}

func TestEnsureDirectoryExists(t *testing.T) {
	const dir = "testing"
	_ = os.Mkdir(dir, 0700)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "plain")
	err := os.WriteFile(fileName, []byte("x"), 0600)
	if nil != err {
		t.Fatalf("write: %q failed: %s", fileName, err)
	}

	if !util.EnsureDirectoryExists(dir) {
		t.Errorf("missing directory: %q", dir)
	}
	if util.EnsureDirectoryExists(fileName) {
		t.Errorf("plain file taken for a directory: %q", fileName)
	}
	if util.EnsureDirectoryExists(filepath.Join(dir, "absent")) {
		t.Error("found a directory that was never created")
	}
}
