// Package errors provides string codes for error instantiation.

package errors

const (
	MissingExecutableError  = "query executable is not set"
	ExecutableNotFoundError = "query executable could not be found"
	ExecutableNotRunnable   = "query executable is not runnable"
	QuerySubprocessError    = "could not run query shell command"
	QueryOutputEmptyError   = "query shell command printed nothing"
	QueryDataUnmarshalError = "could not unmarshall query data"
	QueryOutputUnknownError = "query shell command printed an unknown answer"
)
