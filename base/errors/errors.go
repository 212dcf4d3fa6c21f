// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in the most efficient way possible.
// This package imports the standard errors package, so you should
// not need to import both.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

var (
	// New returns an error that formats as the given text.
	// Each call to New returns a distinct error value even if the text is identical.
	New = errors.New

	// Is reports whether any error in err's tree matches target.
	Is = errors.Is

	// As finds the first error in err's tree that matches target, and if one is found,
	// sets target to that error value and returns true. Otherwise, it returns false.
	As = errors.As

	// Join returns an error that wraps the given errors.
	// Any nil error values are discarded.
	Join = errors.Join

	// Unwrap returns the result of calling the Unwrap method on err, if err's
	// type contains an Unwrap method returning error. Otherwise, Unwrap returns nil.
	Unwrap = errors.Unwrap
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
//	// or
//	if err := errors.Log(MyFunc(v)); err != nil {
//		// do some things
//	}
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T { //yaegi:add
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
