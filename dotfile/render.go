// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dotfile

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treevis/fault"
)

// the external renderer
const (
	graphvizProgram = "dot"
	renderTimeout   = 30 * time.Second
)

// Render - produce the final file content for one snapshot
//
// DOT source passes through untouched; SVG and PDF are produced by
// piping the source through the Graphviz dot program, which must be
// somewhere on the search path
func Render(log *logger.L, source string, format Format) ([]byte, error) {

	if Dot == format {
		return []byte(source), nil
	}

	program, err := exec.LookPath(graphvizProgram)
	if nil != err {
		log.Errorf("graphviz lookup error: %s", err)
		return nil, fault.ErrNotFoundGraphviz
	}

	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, program, "-T"+format.renderType())
	cmd.Stdin = strings.NewReader(source)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("run: %s -T%s", program, format.renderType())

	if err := cmd.Run(); nil != err {
		log.Errorf("graphviz error: %s  stderr: %q", err, stderr.String())
		return nil, fault.ErrGraphvizFailed
	}

	return stdout.Bytes(), nil
}
