// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dotfile

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/treevis/fault"
)

// Format - the kind of file produced for each snapshot
type Format int

// possible output formats
const (
	Dot Format = iota // DOT source, no rendering step
	SVG Format = iota
	PDF Format = iota
)

// String - the name as accepted by ParseFormat
func (format Format) String() string {
	switch format {
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return "dotfile"
	}
}

// internal: the Graphviz -T argument
func (format Format) renderType() string {
	switch format {
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return "dot"
	}
}

// extension - suffix for output files, DOT source has none
func (format Format) extension() string {
	switch format {
	case SVG:
		return ".svg"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// ParseFormat - convert a file type name to a Format
//
// the names are matched without regard to case; anything other than
// svg, pdf or dotfile is rejected
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	case "dotfile":
		return Dot, nil
	default:
		return Dot, fault.ErrInvalidFileType
	}
}

// OutputName - file name for the numbered snapshot of a run
func OutputName(index int, format Format) string {
	return "out-" + strconv.Itoa(index) + format.extension()
}
