// Package errors provides string codes for error instantiation.

package errors

const (
	QueryDecisionError     = "access decision failed, access denied"
	ServiceOpeningError    = "could not construct biometric query service"
	HealthCheckError       = "component is unhealthy"
	HealthCheckFailedError = "one or more components are unhealthy"
)
