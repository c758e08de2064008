// Package errors provides string codes and types for error instantiation.

package errors

import (
	"errors"
	"fmt"
)

const (
	ArgumentCountMessage     = "invalid number of arguments"
	ServiceConstructionError = "could not construct biometric query service"
	ServiceQueryError        = "biometric query service failed"
	ServicePanicError        = "biometric query service panicked"
	AuditPublishingError     = "could not publish access event"
)

// ErrEmptyResult is returned when the service answers without a result.
var ErrEmptyResult = errors.New("biometric query service returned no result")

// ArgumentCountError reports an invocation with other than two positional arguments.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s: expected 2 (template, finger type), got %d", ArgumentCountMessage, e.Got)
}

// PanicError carries a recovered panic value out of the service call.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ServicePanicError, e.Value)
}
