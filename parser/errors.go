// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedData is the error kind
// of the structural and value problems
// found while parsing an output file.
//
// Use errors.Is to check for it,
// and errors.As to retrieve the *DataError.
var ErrMalformedData = errors.New("malformed data")

// A DataError is a problem found in the content
// of an output file.
type DataError struct {
	// File is the base name of the file.
	File string

	// Line is the 1-based line number
	// of the problem.
	// It is zero if the problem is not attached
	// to a particular line.
	Line int

	Msg string
}

func (e *DataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("on file %q: on line %d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("on file %q: %s", e.File, e.Msg)
}

// Is reports whether target is ErrMalformedData.
func (e *DataError) Is(target error) bool {
	return target == ErrMalformedData
}

func dataErr(file string, line int, format string, a ...any) error {
	return &DataError{
		File: file,
		Line: line,
		Msg:  fmt.Sprintf(format, a...),
	}
}
