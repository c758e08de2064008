// Package errors provides string codes for error instantiation.

package errors

import (
	"fmt"
)

type (
	OpeningPSQLError struct {
		Err error
	}
	StatementPSQLError struct {
		Err error
	}
	ExecutionPSQLError struct {
		Err error
	}
	UndefinedFunctionError struct {
		Err      error
		Function string
	}
	ConnectionPSQLError struct {
		Err error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
)

func (e *OpeningPSQLError) Error() string {
	return fmt.Sprintf("%s: could not open", e.Err.Error())
}

func (e *OpeningPSQLError) Unwrap() error { return e.Err }

func (e *StatementPSQLError) Error() string {
	return fmt.Sprintf("%s: could not compile", e.Err.Error())
}

func (e *StatementPSQLError) Unwrap() error { return e.Err }

func (e *ExecutionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not execute", e.Err.Error())
}

func (e *ExecutionPSQLError) Unwrap() error { return e.Err }

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("%s: function is not installed", e.Function)
}

func (e *UndefinedFunctionError) Unwrap() error { return e.Err }

func (e *ConnectionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not reach database", e.Err.Error())
}

func (e *ConnectionPSQLError) Unwrap() error { return e.Err }

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *ContextTimeoutExceededError) Unwrap() error { return e.Err }
