// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dotfile

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/avl"
)

// WriteAll - render every snapshot and write the numbered output
// files into a directory
//
// existing files of the same name are overwritten; on the first
// failure the files already written stay in place and their names
// are returned along with the error
func WriteAll(log *logger.L, snapshots []*avl.Snapshot, format Format, directory string) ([]string, error) {

	written := make([]string, 0, len(snapshots))

	for i, s := range snapshots {
		data, err := Render(log, Generate(s), format)
		if nil != err {
			return written, err
		}

		fileName := filepath.Join(directory, OutputName(i, format))
		err = os.WriteFile(fileName, data, 0644)
		if nil != err {
			log.Errorf("write: %q error: %s", fileName, err)
			return written, err
		}

		log.Infof("wrote: %q (%d bytes)", fileName, len(data))
		written = append(written, fileName)
	}

	return written, nil
}
