package compiler

import (
	"errors"
	"fmt"

	"minicc/pkg/lexer"
)

type LineError = lexer.LineError

// All compile errors are fatal. Each is wrapped with the originating line
// before it leaves the package.
var (
	ErrMismatchedParens  = errors.New("mismatched parentheses")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrDuplicateVariable = errors.New("duplicate variable")
	ErrNoOperator        = errors.New("no operator found in expression")
)

type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}
