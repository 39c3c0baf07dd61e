// Package errors defines the coded error taxonomy of the pipeline. Every
// condition here is per-file and non-fatal: the caller reports the error,
// counts the file as skipped and moves on.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of per-file failure.
type Code string

const (
	// CodeUnreadableSource marks files the reader could not parse.
	CodeUnreadableSource Code = "UNREADABLE_SOURCE"
	// CodeUnclassifiable marks files whose stem matched no measurement
	// pattern, or no gender pattern when the family requires one.
	CodeUnclassifiable Code = "UNCLASSIFIABLE_FILE"
	// CodeMissingColumn marks tables lacking a required x-axis or Sex
	// column after header normalization.
	CodeMissingColumn Code = "MISSING_REQUIRED_COLUMN"
)

// FileError is a coded, per-file pipeline error.
type FileError struct {
	Code    Code
	File    string
	Message string
	Err     error
}

func (e *FileError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Code, e.File, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FileError) Unwrap() error { return e.Err }

// Is matches FileErrors by code, so callers can compare against any error
// carrying the same code with errors.Is.
func (e *FileError) Is(target error) bool {
	var fe *FileError
	if errors.As(target, &fe) {
		return fe.Code == e.Code
	}
	return false
}

// Unreadable wraps a reader failure for the named file.
func Unreadable(file string, err error) *FileError {
	return &FileError{Code: CodeUnreadableSource, File: file, Message: "source could not be parsed", Err: err}
}

// Unclassifiable reports a file whose name resolved no usable context.
func Unclassifiable(file, message string) *FileError {
	return &FileError{Code: CodeUnclassifiable, File: file, Message: message}
}

// MissingColumn reports a table lacking a required column.
func MissingColumn(file, column string) *FileError {
	return &FileError{Code: CodeMissingColumn, File: file, Message: "missing required column " + column}
}
