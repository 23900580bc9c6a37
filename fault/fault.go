// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigResultIsNotTable  = InvalidError("config file does not end with a table")
	ErrGraphvizFailed          = ProcessError("graphviz rendering failed")
	ErrInvalidFileType         = InvalidError("file type is invalid")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidValue            = InvalidError("value is not a decimal integer")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrNotFoundGraphviz        = NotFoundError("graphviz dot program is not found")
	ErrOutputDirPath           = InvalidError("output path is not a folder")
	ErrRequiredOutputDirectory = InvalidError("output folder is required")
	ErrValueOutOfRange         = InvalidError("value is outside the signed 32 bit range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
