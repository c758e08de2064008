// Package errors provides string codes for error instantiation.

package errors

const (
	MissingBaseURLError   = "biometric service URL is not set"
	InvalidBaseURLError   = "biometric service URL is invalid"
	MarshallingError      = "failed to marshal query request"
	RequestCreationError  = "failed to create query request"
	RequestExecutionError = "failed to execute query request"
	UnexpectedStatusError = "biometric service answered with unexpected status"
	UnmarshallingError    = "failed to decode query response"
	HealthCheckError      = "biometric service health check failed"
)
