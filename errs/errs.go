// Package errs defines the merger's error taxonomy. Every failure of a merge
// invocation is one of a closed set of kinds, each rendered as a
// (title, message) pair for the caller to display.
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	InputMissing Kind = iota
	InvalidExtension
	IO
	Parse
	MissingColumns
	Format
	Merge
	Write
)

var titles = map[Kind]string{
	InputMissing:     "Missing Input",
	InvalidExtension: "Invalid Input",
	IO:               "File Error",
	Parse:            "Parse Error",
	MissingColumns:   "Missing Columns",
	Format:           "Input Format Error",
	Merge:            "Merge Error",
	Write:            "Write Error",
}

func (k Kind) Title() string {
	return titles[k]
}

// Error carries a kind plus a caller-facing message. The wrapped cause, when
// present, is appended to the message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Title() string {
	return e.Kind.Title()
}

// KindOf reports the taxonomy kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
