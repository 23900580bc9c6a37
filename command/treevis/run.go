// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/avl"
	"github.com/bitmark-inc/treevis/dotfile"
	"github.com/bitmark-inc/treevis/fault"
)

// a key for the tree
type valueItem int32

func (v valueItem) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Compare - two values for ordering
func (v valueItem) Compare(q interface{}) int {
	w := q.(valueItem)
	switch {
	case v < w:
		return -1
	case v > w:
		return +1
	default:
		return 0
	}
}

// parseValues - convert command line arguments to signed 32 bit values
//
// on failure also returns the offending argument for the error message
func parseValues(arguments []string) ([]int32, string, error) {
	values := make([]int32, 0, len(arguments))
	for _, argument := range arguments {
		n, err := strconv.ParseInt(argument, 10, 32)
		if nil != err {
			if errors.Is(err, strconv.ErrRange) {
				return nil, argument, fault.ErrValueOutOfRange
			}
			return nil, argument, fault.ErrInvalidValue
		}
		values = append(values, int32(n))
	}
	return values, "", nil
}

// buildSnapshots - insert all values and capture the tree states to render
//
// one snapshot per value when intermediate is set, also for duplicate
// values which leave the tree unchanged, otherwise just the final tree
func buildSnapshots(log *logger.L, values []int32, intermediate bool) []*avl.Snapshot {

	tree := avl.New()
	defer tree.Destroy()

	snapshots := make([]*avl.Snapshot, 0, len(values))

	for _, value := range values {
		if tree.Insert(valueItem(value)) {
			log.Debugf("inserted value: %d  count: %d", value, tree.Count())
		} else {
			log.Infof("duplicate value: %d", value)
		}
		if intermediate {
			snapshots = append(snapshots, tree.Snapshot())
		}
	}

	if !intermediate {
		snapshots = append(snapshots, tree.Snapshot())
	}

	return snapshots
}

// run - build the tree and write one output file per snapshot
func run(log *logger.L, values []int32, format dotfile.Format, options *Configuration) ([]string, error) {
	snapshots := buildSnapshots(log, values, options.Intermediate)
	return dotfile.WriteAll(log, snapshots, format, options.OutputDirectory)
}
